// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/repository"
	"sommelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// drinkRepository implements the repository.DrinkRepository interface.
type drinkRepository struct {
	db *gorm.DB
}

// NewDrinkRepository is the constructor for drinkRepository.
func NewDrinkRepository(db *gorm.DB) repository.DrinkRepository {
	return &drinkRepository{
		db: db,
	}
}

// FindByID retrieves a single drink by its unique ID.
func (repo *drinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Drink, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a drink with SELECT ... FOR UPDATE.
// The lock is held until the surrounding transaction commits or rolls back.
func (repo *drinkRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Drink, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// FindByIDForShare retrieves a drink with SELECT ... FOR SHARE.
func (repo *drinkRepository) FindByIDForShare(ctx context.Context, id uuid.UUID) (*entity.Drink, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "SHARE"}), id)
}

func (repo *drinkRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Drink, error) {
	var drinkM model.DrinkModel

	if err := db.Where("id = ?", id).First(&drinkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDrinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find drink by ID")
	}

	return toDrinkDomain(&drinkM), nil
}

// FindAll lists drinks filtered by type and ordered by the requested counter.
func (repo *drinkRepository) FindAll(ctx context.Context, query entity.DrinkQuery) ([]*entity.Drink, error) {
	query = query.Normalize()

	db := repo.db.WithContext(ctx)
	if query.Type != entity.DrinkTypeAll {
		db = db.Where("type = ?", query.Type.String())
	}

	var drinkModels []*model.DrinkModel
	if err := db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: drinkOrderColumn(query.Filter)}, Desc: query.Order == entity.OrderDesc}).
		Order("created_at DESC").
		Find(&drinkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find drinks")
	}

	drinks := make([]*entity.Drink, 0, len(drinkModels))
	for _, drinkM := range drinkModels {
		drinks = append(drinks, toDrinkDomain(drinkM))
	}

	return drinks, nil
}

// Create persists a new drink.
func (repo *drinkRepository) Create(ctx context.Context, drink *entity.Drink) error {
	drinkM := fromDrinkDomain(drink)

	if err := repo.db.WithContext(ctx).Create(drinkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDrink
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("drink counters out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create drink")
	}

	drink.CreatedAt = drinkM.CreatedAt
	drink.UpdatedAt = drinkM.UpdatedAt

	return nil
}

// Update overwrites an existing drink, counters included.
func (repo *drinkRepository) Update(ctx context.Context, drink *entity.Drink) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.DrinkModel{}).
		Where("id = ?", drink.ID).
		Updates(map[string]any{
			"name":           drink.Name,
			"image_url":      drink.ImageURL,
			"type":           drink.Type.String(),
			"avg_rating":     float64(drink.AvgRating),
			"num_of_reviews": drink.NumOfReviews,
			"num_of_wish":    drink.NumOfWish,
			"updated_at":     now,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("drink counters out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update drink")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDrinkNotFound
	}

	drink.UpdatedAt = now

	return nil
}

// DeleteByID removes a drink.
func (repo *drinkRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DrinkModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrDrinkHasReviews
		}

		return errors.Wrap(result.Error, "failed to delete drink")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDrinkNotFound
	}

	return nil
}

func drinkOrderColumn(filter entity.FilterType) string {
	switch filter {
	case entity.FilterRating:
		return "avg_rating"
	case entity.FilterWishCount:
		return "num_of_wish"
	default:
		return "num_of_reviews"
	}
}

// --- Mapper Functions ---

func toDrinkDomain(data *model.DrinkModel) *entity.Drink {
	if data == nil {
		return nil
	}

	return &entity.Drink{
		ID:           data.ID,
		Name:         data.Name,
		ImageURL:     data.ImageURL,
		Type:         entity.ParseDrinkType(data.Type),
		AvgRating:    entity.DrinkRating(data.AvgRating),
		NumOfReviews: data.NumOfReviews,
		NumOfWish:    data.NumOfWish,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromDrinkDomain(data *entity.Drink) *model.DrinkModel {
	if data == nil {
		return nil
	}

	return &model.DrinkModel{
		ID:           data.ID,
		Name:         data.Name,
		ImageURL:     data.ImageURL,
		Type:         data.Type.String(),
		AvgRating:    float64(data.AvgRating),
		NumOfReviews: data.NumOfReviews,
		NumOfWish:    data.NumOfWish,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
