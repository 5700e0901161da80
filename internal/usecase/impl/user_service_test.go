package impl

import (
	"context"
	"testing"

	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/repository"
	mockRepo "sommelier/internal/mocks/repository"
	mockSvc "sommelier/internal/mocks/service"
	"sommelier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service     usecase.UserUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
		userRepo:    userRepo,
		hasher:      hasher,
	}
}

// expectTx runs the transaction body against the fixture's repository factory.
func (f userServiceFixtures) expectTx(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		}).
		Once()
	f.repoFactory.EXPECT().NewUserRepository().Return(f.userRepo).Once()
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil).Once()
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "alice" && u.PasswordHash == "hashed" && u.Name == "Alice" && !u.CreatedAt.IsZero()
		})).
		Return(nil).
		Once()

	user, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		UserID:   " alice ",
		Password: "s3cret!",
		Name:     "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.UserID("alice"), user.ID)
}

func TestUserService_RegisterUser_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RegisterUserInput
		setup func(fx userServiceFixtures)
		kind  domainerrors.Kind
	}{
		{
			name:  "empty id",
			input: &usecase.RegisterUserInput{UserID: "", Password: "pw"},
			kind:  domainerrors.KindInvalid,
		},
		{
			name:  "name too long",
			input: &usecase.RegisterUserInput{UserID: "alice", Password: "pw", Name: "0123456789012345678901234567890"},
			kind:  domainerrors.KindInvalid,
		},
		{
			name:  "missing password",
			input: &usecase.RegisterUserInput{UserID: "alice"},
			kind:  domainerrors.KindInvalid,
		},
		{
			name:  "hash failure",
			input: &usecase.RegisterUserInput{UserID: "alice", Password: "pw"},
			setup: func(fx userServiceFixtures) {
				fx.hasher.EXPECT().Hash("pw").Return("", errors.New("boom")).Once()
			},
			kind: domainerrors.KindSystem,
		},
		{
			name:  "taken id",
			input: &usecase.RegisterUserInput{UserID: "alice", Password: "pw"},
			setup: func(fx userServiceFixtures) {
				fx.hasher.EXPECT().Hash("pw").Return("hashed", nil).Once()
				fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateUser).Once()
			},
			kind: domainerrors.KindConflict,
		},
		{
			name:  "database failure",
			input: &usecase.RegisterUserInput{UserID: "alice", Password: "pw"},
			setup: func(fx userServiceFixtures) {
				fx.hasher.EXPECT().Hash("pw").Return("hashed", nil).Once()
				fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()
			},
			kind: domainerrors.KindSystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			user, err := fx.service.RegisterUser(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, user)
			assert.Equal(t, tt.kind, domainerrors.KindOf(err))
		})
	}
}

func TestUserService_FindUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, entity.UserID("ghost")).Return(nil, repository.ErrUserNotFound).Once()

	_, err := fx.service.FindUser(ctx, "ghost")

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestUserService_UpdateUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	existing := &entity.User{ID: "alice", Name: "Alice", PasswordHash: "old"}

	fx.expectTx(ctx)
	fx.userRepo.EXPECT().FindByID(ctx, entity.UserID("alice")).Return(existing, nil).Once()
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "Al" && u.Description == "likes wine" && u.PasswordHash == "old"
		})).
		Return(nil).
		Once()

	user, err := fx.service.UpdateUser(ctx, &usecase.UpdateUserInput{UserID: "alice", Name: "Al", Description: "likes wine"})

	require.NoError(t, err)
	assert.Equal(t, "Al", user.Name)
}

func TestUserService_UpdateUser_NewPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("new-pw").Return("new-hash", nil).Once()
	fx.expectTx(ctx)
	fx.userRepo.EXPECT().FindByID(ctx, entity.UserID("alice")).Return(&entity.User{ID: "alice", PasswordHash: "old"}, nil).Once()
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.PasswordHash == "new-hash" })).
		Return(nil).
		Once()

	_, err := fx.service.UpdateUser(ctx, &usecase.UpdateUserInput{UserID: "alice", Password: "new-pw"})

	require.NoError(t, err)
}

func TestUserService_DeleteUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().DeleteByID(ctx, entity.UserID("alice")).Return(nil).Once()
	fx.userRepo.EXPECT().DeleteByID(ctx, entity.UserID("ghost")).Return(repository.ErrUserNotFound).Once()

	require.NoError(t, fx.service.DeleteUser(ctx, "alice"))
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(fx.service.DeleteUser(ctx, "ghost")))
}
