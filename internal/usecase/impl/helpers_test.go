package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sommelier/config"
	"sommelier/internal/domain/entity"
	"sommelier/internal/domain/repository"
	"sommelier/internal/domain/service"
	"sommelier/internal/infra/identity"
	"sommelier/internal/infra/metrics"
	"sommelier/internal/infra/persistence/memory"
	"sommelier/internal/infra/pubsub"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Saga: &config.SagaConfig{
			DrinkUpdateTimeout:  time.Second,
			PublishRepairEvents: true,
		},
		Worker: &config.WorkerConfig{ReplayBatchSize: 50},
	}
}

// catalog wires the real services over an in-memory store.
type catalog struct {
	store     *memory.Store
	txManager repository.TransactionManager
	drinks    usecase.DrinkUsecase
	reviews   usecase.ReviewUsecase
	wishes    usecase.WishUsecase
	reconcile usecase.ReconcileUsecase
	sync      *CounterSync
	registry  *prometheus.Registry
}

type catalogOption func(*catalogDeps)

type catalogDeps struct {
	drinks    usecase.DrinkUsecase
	publisher service.EventPublisher
}

// withDrinkUsecase replaces the drink side of the counter sync, e.g. to inject phase-2 failures.
func withDrinkUsecase(d usecase.DrinkUsecase) catalogOption {
	return func(deps *catalogDeps) { deps.drinks = d }
}

func withPublisher(p service.EventPublisher) catalogOption {
	return func(deps *catalogDeps) { deps.publisher = p }
}

func newCatalog(t *testing.T, opts ...catalogOption) *catalog {
	t.Helper()

	cfg := newTestConfig()
	logger := newDiscardLogger()
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	registry := prometheus.NewRegistry()
	syncMetrics := metrics.NewSyncMetrics(registry)

	idGen, err := identity.NewGenerator(cfg)
	require.NoError(t, err)

	drinks := NewDrinkService(DrinkServiceParams{
		TxManager:   txManager,
		DrinkRepo:   memory.NewDrinkRepository(store),
		IDGenerator: idGen,
		Metrics:     syncMetrics,
		Logger:      logger,
	})

	deps := &catalogDeps{drinks: drinks, publisher: pubsub.NewNoopPublisher(logger)}
	for _, opt := range opts {
		opt(deps)
	}

	counterSync := NewCounterSync(CounterSyncParams{
		DrinkUsecase: deps.drinks,
		Publisher:    deps.publisher,
		Metrics:      syncMetrics,
		Config:       cfg,
		Logger:       logger,
	})

	return &catalog{
		store:     store,
		txManager: txManager,
		drinks:    drinks,
		reviews: NewReviewService(ReviewServiceParams{
			TxManager:   txManager,
			ReviewRepo:  memory.NewReviewRepository(store),
			IDGenerator: idGen,
			CounterSync: counterSync,
			Logger:      logger,
		}),
		wishes: NewWishService(WishServiceParams{
			TxManager:   txManager,
			WishRepo:    memory.NewWishRepository(store),
			IDGenerator: idGen,
			CounterSync: counterSync,
			Logger:      logger,
		}),
		reconcile: NewReconcileService(ReconcileServiceParams{
			TxManager:    txManager,
			UpdateRepo:   memory.NewCounterUpdateRepository(store),
			DrinkUsecase: drinks,
			Config:       cfg,
			Logger:       logger,
		}),
		sync:     counterSync,
		registry: registry,
	}
}

func (c *catalog) createDrink(t *testing.T, name string) *entity.Drink {
	t.Helper()

	drink, err := c.drinks.CreateDrink(context.Background(), &usecase.CreateDrinkInput{Name: name, Type: entity.DrinkTypeWine})
	require.NoError(t, err)

	return drink
}

// seedDrink stores a drink with preset counters, bypassing the catalog service.
func (c *catalog) seedDrink(t *testing.T, avg entity.DrinkRating, reviews int) *entity.Drink {
	t.Helper()

	drink := &entity.Drink{ID: uuid.New(), Name: "seeded", Type: entity.DrinkTypeWine, AvgRating: avg, NumOfReviews: reviews}
	require.NoError(t, memory.NewDrinkRepository(c.store).Create(context.Background(), drink))

	return drink
}

func (c *catalog) drink(t *testing.T, id uuid.UUID) *entity.Drink {
	t.Helper()

	drink, err := c.drinks.FindDrink(context.Background(), id)
	require.NoError(t, err)

	return drink
}

func (c *catalog) pending(t *testing.T, drinkID uuid.UUID) []*entity.CounterUpdate {
	t.Helper()

	pending, err := c.reconcile.PendingForDrink(context.Background(), drinkID)
	require.NoError(t, err)

	return pending
}
