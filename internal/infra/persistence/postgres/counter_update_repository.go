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
	"gorm.io/gorm/clause"
)

// counterUpdateRepository implements the repository.CounterUpdateRepository interface.
type counterUpdateRepository struct {
	db *gorm.DB
}

// NewCounterUpdateRepository is the constructor for counterUpdateRepository.
func NewCounterUpdateRepository(db *gorm.DB) repository.CounterUpdateRepository {
	return &counterUpdateRepository{
		db: db,
	}
}

// Create persists a new pending update.
func (repo *counterUpdateRepository) Create(ctx context.Context, update *entity.CounterUpdate) error {
	if err := repo.db.WithContext(ctx).Create(fromCounterUpdateDomain(update)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create counter update")
	}

	return nil
}

// FindByID retrieves an update by its unique ID.
func (repo *counterUpdateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CounterUpdate, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves an update with SELECT ... FOR UPDATE.
func (repo *counterUpdateRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.CounterUpdate, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *counterUpdateRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.CounterUpdate, error) {
	var updateM model.CounterUpdateModel

	if err := db.Where("id = ?", id).First(&updateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCounterUpdateNotFound
		}

		return nil, errors.Wrap(err, "failed to find counter update by ID")
	}

	return toCounterUpdateDomain(&updateM), nil
}

// MarkApplied records that the drink reflects the update.
func (repo *counterUpdateRepository) MarkApplied(ctx context.Context, update *entity.CounterUpdate) error {
	return repo.saveStatus(ctx, update)
}

// MarkFailed records a failed attempt on a still pending update.
func (repo *counterUpdateRepository) MarkFailed(ctx context.Context, update *entity.CounterUpdate) error {
	return repo.saveStatus(ctx, update)
}

func (repo *counterUpdateRepository) saveStatus(ctx context.Context, update *entity.CounterUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CounterUpdateModel{}).
		Where("id = ?", update.ID).
		Updates(map[string]any{
			"status":     string(update.Status),
			"attempts":   update.Attempts,
			"last_error": update.LastError,
			"applied_at": update.AppliedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update counter update status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCounterUpdateNotFound
	}

	return nil
}

// FindPending lists pending updates, oldest first.
func (repo *counterUpdateRepository) FindPending(ctx context.Context, limit int) ([]*entity.CounterUpdate, error) {
	var updateModels []*model.CounterUpdateModel

	db := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.CounterUpdatePending)).
		Order("created_at ASC, id ASC")
	if limit > 0 {
		db = db.Limit(limit)
	}

	if err := db.Find(&updateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending counter updates")
	}

	return toCounterUpdateDomains(updateModels), nil
}

// FindPendingByDrink lists the pending updates of one drink, oldest first.
func (repo *counterUpdateRepository) FindPendingByDrink(ctx context.Context, drinkID uuid.UUID) ([]*entity.CounterUpdate, error) {
	var updateModels []*model.CounterUpdateModel

	if err := repo.db.WithContext(ctx).
		Where("drink_id = ? AND status = ?", drinkID, string(entity.CounterUpdatePending)).
		Order("created_at ASC, id ASC").
		Find(&updateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending counter updates by drink")
	}

	return toCounterUpdateDomains(updateModels), nil
}

// --- Mapper Functions ---

func toCounterUpdateDomains(data []*model.CounterUpdateModel) []*entity.CounterUpdate {
	updates := make([]*entity.CounterUpdate, 0, len(data))
	for _, updateM := range data {
		updates = append(updates, toCounterUpdateDomain(updateM))
	}

	return updates
}

func toCounterUpdateDomain(data *model.CounterUpdateModel) *entity.CounterUpdate {
	if data == nil {
		return nil
	}

	return &entity.CounterUpdate{
		ID:        data.ID,
		DrinkID:   data.DrinkID,
		SourceID:  data.SourceID,
		Op:        entity.CounterOp(data.Op),
		OldRating: entity.ReviewRating(data.OldRating),
		NewRating: entity.ReviewRating(data.NewRating),
		Status:    entity.CounterUpdateStatus(data.Status),
		Attempts:  data.Attempts,
		LastError: data.LastError,
		CreatedAt: data.CreatedAt,
		AppliedAt: data.AppliedAt,
	}
}

func fromCounterUpdateDomain(data *entity.CounterUpdate) *model.CounterUpdateModel {
	if data == nil {
		return nil
	}

	return &model.CounterUpdateModel{
		ID:        data.ID,
		DrinkID:   data.DrinkID,
		SourceID:  data.SourceID,
		Op:        data.Op.String(),
		OldRating: int(data.OldRating),
		NewRating: int(data.NewRating),
		Status:    string(data.Status),
		Attempts:  data.Attempts,
		LastError: data.LastError,
		CreatedAt: data.CreatedAt,
		AppliedAt: data.AppliedAt,
	}
}
