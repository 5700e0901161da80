package postgres

import (
	"context"

	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/repository"
	"sommelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wishRepository implements the repository.WishRepository interface.
type wishRepository struct {
	db *gorm.DB
}

// NewWishRepository is the constructor for wishRepository.
func NewWishRepository(db *gorm.DB) repository.WishRepository {
	return &wishRepository{
		db: db,
	}
}

// FindByID retrieves a single wish by its unique ID.
func (repo *wishRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wish, error) {
	var wishM model.WishModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&wishM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishNotFound
		}

		return nil, errors.Wrap(err, "failed to find wish by ID")
	}

	return toWishDomain(&wishM), nil
}

// FindByUserAndDrink retrieves the wish a user made for a drink.
func (repo *wishRepository) FindByUserAndDrink(ctx context.Context, userID entity.UserID, drinkID uuid.UUID) (*entity.Wish, error) {
	var wishM model.WishModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND drink_id = ?", userID.String(), drinkID).
		First(&wishM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishNotFound
		}

		return nil, errors.Wrap(err, "failed to find wish by user and drink")
	}

	return toWishDomain(&wishM), nil
}

// FindAll lists wishes matching the query, newest first.
func (repo *wishRepository) FindAll(ctx context.Context, query entity.WishQuery) ([]*entity.Wish, error) {
	db := repo.db.WithContext(ctx)
	if query.UserID != "" {
		db = db.Where("user_id = ?", query.UserID.String())
	}
	if query.DrinkID != uuid.Nil {
		db = db.Where("drink_id = ?", query.DrinkID)
	}

	var wishModels []*model.WishModel
	if err := db.Order("created_at DESC").Find(&wishModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find wishes")
	}

	wishes := make([]*entity.Wish, 0, len(wishModels))
	for _, wishM := range wishModels {
		wishes = append(wishes, toWishDomain(wishM))
	}

	return wishes, nil
}

// CountByDrink returns the number of wishes stored for a drink.
func (repo *wishRepository) CountByDrink(ctx context.Context, drinkID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WishModel{}).
		Where("drink_id = ?", drinkID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count wishes")
	}

	return int(count), nil
}

// Create persists a new wish.
func (repo *wishRepository) Create(ctx context.Context, wish *entity.Wish) error {
	wishM := fromWishDomain(wish)

	if err := repo.db.WithContext(ctx).Create(wishM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWish
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDrinkNotFound.WrapMessage("invalid drink or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wish")
	}

	wish.CreatedAt = wishM.CreatedAt

	return nil
}

// DeleteByID removes a wish.
func (repo *wishRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WishModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete wish")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWishNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toWishDomain(data *model.WishModel) *entity.Wish {
	if data == nil {
		return nil
	}

	return &entity.Wish{
		ID:        data.ID,
		UserID:    entity.UserID(data.UserID),
		DrinkID:   data.DrinkID,
		CreatedAt: data.CreatedAt,
	}
}

func fromWishDomain(data *entity.Wish) *model.WishModel {
	if data == nil {
		return nil
	}

	return &model.WishModel{
		ID:        data.ID,
		UserID:    data.UserID.String(),
		DrinkID:   data.DrinkID,
		CreatedAt: data.CreatedAt,
	}
}
