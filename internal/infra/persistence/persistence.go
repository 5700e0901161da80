// Package persistence selects the storage backend named by the configuration.
package persistence

import (
	"log/slog"

	"sommelier/config"
	"sommelier/internal/domain/constants"
	"sommelier/internal/domain/repository"
	"sommelier/internal/infra/persistence/memory"
	"sommelier/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is every repository plus the transaction manager of one backend.
type Repositories struct {
	fx.Out

	TxManager  repository.TransactionManager
	DrinkRepo  repository.DrinkRepository
	ReviewRepo repository.ReviewRepository
	WishRepo   repository.WishRepository
	UserRepo   repository.UserRepository
	UpdateRepo repository.CounterUpdateRepository
}

// New builds the repositories for cfg.Persistence.Driver.
func New(params Params) (Repositories, error) {
	driver := constants.PersistenceMemory
	if params.Config.Persistence != nil && params.Config.Persistence.Driver != "" {
		driver = params.Config.Persistence.Driver
	}

	switch driver {
	case constants.PersistenceMemory:
		params.Logger.Warn("Using in-memory persistence, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			TxManager:  memory.NewTransactionManager(store),
			DrinkRepo:  memory.NewDrinkRepository(store),
			ReviewRepo: memory.NewReviewRepository(store),
			WishRepo:   memory.NewWishRepository(store),
			UserRepo:   memory.NewUserRepository(store),
			UpdateRepo: memory.NewCounterUpdateRepository(store),
		}, nil

	case constants.PersistencePostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres configuration is required for the postgres driver")
		}
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:  postgres.NewTransactionManager(db),
			DrinkRepo:  postgres.NewDrinkRepository(db),
			ReviewRepo: postgres.NewReviewRepository(db),
			WishRepo:   postgres.NewWishRepository(db),
			UserRepo:   postgres.NewUserRepository(db),
			UpdateRepo: postgres.NewCounterUpdateRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown persistence driver: %s", driver)
	}
}
