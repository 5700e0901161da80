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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByUserAndDrink retrieves the review a user wrote for a drink.
func (repo *reviewRepository) FindByUserAndDrink(ctx context.Context, userID entity.UserID, drinkID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND drink_id = ?", userID.String(), drinkID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by user and drink")
	}

	return toReviewDomain(&reviewM), nil
}

// FindAll lists reviews matching the query, newest first.
func (repo *reviewRepository) FindAll(ctx context.Context, query entity.ReviewQuery) ([]*entity.Review, error) {
	db := repo.db.WithContext(ctx)
	if query.UserID != "" {
		db = db.Where("user_id = ?", query.UserID.String())
	}
	if query.DrinkID != uuid.Nil {
		db = db.Where("drink_id = ?", query.DrinkID)
	}

	var reviewModels []*model.ReviewModel
	if err := db.Order("created_at DESC").Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Summarize returns the number and sum of ratings stored for a drink.
func (repo *reviewRepository) Summarize(ctx context.Context, drinkID uuid.UUID) (entity.RatingSummary, error) {
	var row struct {
		Count int
		Sum   int
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum").
		Where("drink_id = ?", drinkID).
		Scan(&row).Error; err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to summarize reviews")
	}

	return entity.RatingSummary{Count: row.Count, Sum: row.Sum}, nil
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDrinkNotFound.WrapMessage("invalid drink or user reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.Invalid("rating must be between 0 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Update overwrites an existing review's rating and comment.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":     int(review.Rating),
			"comment":    review.Comment,
			"updated_at": review.UpdatedAt,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.Invalid("rating must be between 0 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeleteByID removes a review.
func (repo *reviewRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		DrinkID:   data.DrinkID,
		UserID:    entity.UserID(data.UserID),
		Rating:    entity.ReviewRating(data.Rating),
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		DrinkID:   data.DrinkID,
		UserID:    data.UserID.String(),
		Rating:    int(data.Rating),
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
