package impl

import (
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/repository"

	"github.com/pkg/errors"
)

// repoErrors maps repository sentinels onto the domain errors API consumers see.
//
//nolint:gochecknoglobals
var repoErrors = []struct {
	sentinel error
	domain   *domainerrors.BaseError
}{
	{repository.ErrDrinkNotFound, domainerrors.ErrDrinkNotFound},
	{repository.ErrDuplicateDrink, domainerrors.ErrDrinkAlreadyExists},
	{repository.ErrReviewNotFound, domainerrors.ErrReviewNotFound},
	{repository.ErrDuplicateReview, domainerrors.ErrReviewAlreadyExists},
	{repository.ErrWishNotFound, domainerrors.ErrWishNotFound},
	{repository.ErrDuplicateWish, domainerrors.ErrWishAlreadyExists},
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrDuplicateUser, domainerrors.ErrUserAlreadyExists},
	{repository.ErrCounterUpdateNotFound, domainerrors.ErrCounterUpdateNotFound},
}

// mapRepoError converts err into a domain error. Errors that already carry a kind pass through,
// anything else is a SystemError whose message hides the driver error.
func mapRepoError(err error, action string) error {
	if err == nil {
		return nil
	}

	for _, m := range repoErrors {
		if errors.Is(err, m.sentinel) {
			return errors.Wrap(m.domain, action)
		}
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(errors.Wrap(err, action), action)
}
