// Package memory contains an in-process implementation of the persistence layer.
// It backs development setups and service tests; every transaction holds the store lock,
// so counter updates on the same drink never interleave.
package memory

import (
	"context"
	"maps"
	"sync"

	"sommelier/internal/domain/entity"
	"sommelier/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds every aggregate in maps keyed by id. Values are stored by copy.
type Store struct {
	mu sync.Mutex

	drinks  map[uuid.UUID]entity.Drink
	reviews map[uuid.UUID]entity.Review
	wishes  map[uuid.UUID]entity.Wish
	users   map[entity.UserID]entity.User
	updates map[uuid.UUID]entity.CounterUpdate
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		drinks:  make(map[uuid.UUID]entity.Drink),
		reviews: make(map[uuid.UUID]entity.Review),
		wishes:  make(map[uuid.UUID]entity.Wish),
		users:   make(map[entity.UserID]entity.User),
		updates: make(map[uuid.UUID]entity.CounterUpdate),
	}
}

type snapshot struct {
	drinks  map[uuid.UUID]entity.Drink
	reviews map[uuid.UUID]entity.Review
	wishes  map[uuid.UUID]entity.Wish
	users   map[entity.UserID]entity.User
	updates map[uuid.UUID]entity.CounterUpdate
}

// snapshot must be called with mu held.
func (s *Store) snapshot() snapshot {
	return snapshot{
		drinks:  maps.Clone(s.drinks),
		reviews: maps.Clone(s.reviews),
		wishes:  maps.Clone(s.wishes),
		users:   maps.Clone(s.users),
		updates: maps.Clone(s.updates),
	}
}

// restore must be called with mu held.
func (s *Store) restore(snap snapshot) {
	s.drinks = snap.drinks
	s.reviews = snap.reviews
	s.wishes = snap.wishes
	s.users = snap.users
	s.updates = snap.updates
}

// access runs fn under the store lock unless the caller is inside a transaction that already holds it.
func (s *Store) access(inTx bool, fn func() error) error {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	return fn()
}

// transactionManager implements repository.TransactionManager over a Store.
type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a transaction manager that serializes transactions on the store lock
// and rolls the store back to its previous state when fn fails or panics.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn while holding the store lock.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snap := tm.store.snapshot()
	committed := false
	defer func() {
		if !committed {
			tm.store.restore(snap)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store, inTx: true}); err != nil {
		return err
	}

	// A transaction whose context expired while it ran is rolled back, like a database would.
	if err := ctx.Err(); err != nil {
		return err
	}

	committed = true

	return nil
}

// repositoryFactory implements repository.RepositoryFactory for one transaction.
type repositoryFactory struct {
	store *Store
	inTx  bool
}

// NewDrinkRepository returns a DrinkRepository bound to the transaction.
func (f *repositoryFactory) NewDrinkRepository() repository.DrinkRepository {
	return &drinkRepository{store: f.store, inTx: f.inTx}
}

// NewReviewRepository returns a ReviewRepository bound to the transaction.
func (f *repositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{store: f.store, inTx: f.inTx}
}

// NewWishRepository returns a WishRepository bound to the transaction.
func (f *repositoryFactory) NewWishRepository() repository.WishRepository {
	return &wishRepository{store: f.store, inTx: f.inTx}
}

// NewUserRepository returns a UserRepository bound to the transaction.
func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{store: f.store, inTx: f.inTx}
}

// NewCounterUpdateRepository returns a CounterUpdateRepository bound to the transaction.
func (f *repositoryFactory) NewCounterUpdateRepository() repository.CounterUpdateRepository {
	return &counterUpdateRepository{store: f.store, inTx: f.inTx}
}

// NewDrinkRepository returns a DrinkRepository that locks the store per call.
func NewDrinkRepository(store *Store) repository.DrinkRepository {
	return &drinkRepository{store: store}
}

// NewReviewRepository returns a ReviewRepository that locks the store per call.
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

// NewWishRepository returns a WishRepository that locks the store per call.
func NewWishRepository(store *Store) repository.WishRepository {
	return &wishRepository{store: store}
}

// NewUserRepository returns a UserRepository that locks the store per call.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// NewCounterUpdateRepository returns a CounterUpdateRepository that locks the store per call.
func NewCounterUpdateRepository(store *Store) repository.CounterUpdateRepository {
	return &counterUpdateRepository{store: store}
}
