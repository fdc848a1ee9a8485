package impl

import (
	"context"
	"testing"

	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/repository"
	"studyhub/internal/domain/service"
	mockRepo "studyhub/internal/mocks/repository"
	mockService "studyhub/internal/mocks/service"
	"studyhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	tx       *mockRepo.MockTransactionManager
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
	kakao    *mockService.MockKakaoAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	tx := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	kakao := mockService.NewMockKakaoAuthService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:        tx,
		UserRepo:         userRepo,
		Hasher:           hasher,
		KakaoAuthService: kakao,
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  svc,
		tx:       tx,
		userRepo: userRepo,
		hasher:   hasher,
		kakao:    kakao,
	}
}

// expectTransaction makes the transaction manager run the callback against a
// factory that hands out the given user repository.
func expectTransaction(t *testing.T, tx *mockRepo.MockTransactionManager, userRepo *mockRepo.MockUserRepository) {
	t.Helper()

	tx.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		})
}

func TestUserService_SignUp_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.SignUpInput{
		Nickname: "gopher",
		Password: "secret-password",
		Email:    "gopher@example.com",
		Birthday: "1995-03-14",
		Job:      "student",
	}

	expectTransaction(t, fx.tx, fx.userRepo)
	fx.userRepo.EXPECT().FindByNickname(ctx, "gopher").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "gopher@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret-password").Return("stored-hash", "stored-salt", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "gopher", user.Nickname)
			assert.Equal(t, "gopher@example.com", user.Email)
			assert.Equal(t, "1995-03-14", user.Birthday)
			assert.Equal(t, "student", user.Job)
			require.NotNil(t, user.Credential)
			assert.Equal(t, "stored-hash", user.Credential.PasswordHash)
			assert.Equal(t, "stored-salt", user.Credential.Salt)

			return nil
		})

	err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
}

func TestUserService_SignUp_NicknameTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectTransaction(t, fx.tx, fx.userRepo)
	fx.userRepo.EXPECT().
		FindByNickname(ctx, "gopher").
		Return(&entity.User{ID: 7, Nickname: "gopher"}, nil)

	err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Nickname: "gopher",
		Password: "pw",
		Email:    "new@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNicknameTaken)
}

// When both the nickname and the email collide, the nickname conflict wins
// because its check runs first.
func TestUserService_SignUp_NicknameCheckedBeforeEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectTransaction(t, fx.tx, fx.userRepo)
	fx.userRepo.EXPECT().
		FindByNickname(ctx, "gopher").
		Return(&entity.User{ID: 7, Nickname: "gopher", Email: "taken@example.com"}, nil)

	err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Nickname: "gopher",
		Password: "pw",
		Email:    "taken@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNicknameTaken)
	fx.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestUserService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectTransaction(t, fx.tx, fx.userRepo)
	fx.userRepo.EXPECT().FindByNickname(ctx, "gopher").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: 9, Email: "taken@example.com"}, nil)

	err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Nickname: "gopher",
		Password: "pw",
		Email:    "taken@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Login_Success_ReturnsIDOnly(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByNickname(ctx, "gopher").
		Return(&entity.User{
			ID:       42,
			Nickname: "gopher",
			Credential: &entity.Credential{
				PasswordHash: "stored-hash",
				Salt:         "stored-salt",
			},
		}, nil)
	fx.hasher.EXPECT().Check("secret-password", "stored-salt", "stored-hash").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Nickname: "gopher",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, &usecase.LoginOutput{ID: 42}, output)
}

func TestUserService_Login_UnknownNickname(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByNickname(ctx, "nobody").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Nickname: "nobody", Password: "pw"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByNickname(ctx, "gopher").
		Return(&entity.User{
			ID:         42,
			Nickname:   "gopher",
			Credential: &entity.Credential{PasswordHash: "stored-hash", Salt: "stored-salt"},
		}, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-salt", "stored-hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Nickname: "gopher", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
}

// An OAuth-only account (or a corrupted row) has no usable stored credential.
// Password login against it must fail closed without calling the hasher.
func TestUserService_Login_CredentialCorrupted(t *testing.T) {
	tests := []struct {
		name       string
		credential *entity.Credential
	}{
		{name: "nil credential", credential: nil},
		{name: "empty hash", credential: &entity.Credential{Salt: "stored-salt"}},
		{name: "empty salt", credential: &entity.Credential{PasswordHash: "stored-hash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()

			fx.userRepo.EXPECT().
				FindByNickname(ctx, "gopher").
				Return(&entity.User{ID: 42, Nickname: "gopher", Credential: tt.credential}, nil)

			output, err := fx.service.Login(ctx, &usecase.LoginInput{Nickname: "gopher", Password: "pw"})

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrCredentialCorrupted)
			fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_KakaoLogin_FirstLoginCreatesUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.kakao.EXPECT().ExchangeCode(ctx, "auth-code").Return("access-token", nil)
	fx.kakao.EXPECT().GetUserInfo(ctx, "access-token").Return(&service.OAuthUser{
		ID:              "12345",
		Nickname:        "kakao-gopher",
		ProfileImageURL: "https://img.kakao.example/p.jpg",
	}, nil)
	fx.userRepo.EXPECT().FindByKakaoID(ctx, "12345").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "kakao-gopher", user.Nickname)
			assert.Equal(t, "https://img.kakao.example/p.jpg", user.ProfileImgURL)
			assert.Equal(t, "12345", user.KakaoID)
			assert.Nil(t, user.Credential)

			user.ID = 42

			return nil
		})

	output, err := fx.service.KakaoLogin(ctx, &usecase.KakaoLoginInput{Code: "auth-code"})

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, int64(42), output.User.ID)
	assert.Equal(t, "kakao-gopher", output.User.Nickname)
}

// A repeat login returns the stored record as-is; drifted provider profile
// fields are not written back.
func TestUserService_KakaoLogin_RepeatLoginDoesNotSyncProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.kakao.EXPECT().ExchangeCode(ctx, "auth-code").Return("access-token", nil)
	fx.kakao.EXPECT().GetUserInfo(ctx, "access-token").Return(&service.OAuthUser{
		ID:              "12345",
		Nickname:        "renamed-on-kakao",
		ProfileImageURL: "https://img.kakao.example/new.jpg",
	}, nil)
	fx.userRepo.EXPECT().FindByKakaoID(ctx, "12345").Return(&entity.User{
		ID:            42,
		Nickname:      "kakao-gopher",
		ProfileImgURL: "https://img.kakao.example/old.jpg",
		KakaoID:       "12345",
	}, nil)

	output, err := fx.service.KakaoLogin(ctx, &usecase.KakaoLoginInput{Code: "auth-code"})

	require.NoError(t, err)
	assert.Equal(t, "kakao-gopher", output.User.Nickname)
	assert.Equal(t, "https://img.kakao.example/old.jpg", output.User.ProfileImgURL)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_KakaoLogin_ExchangeFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.kakao.EXPECT().
		ExchangeCode(ctx, "bad-code").
		Return("", errors.New("token endpoint returned status 400"))

	output, err := fx.service.KakaoLogin(ctx, &usecase.KakaoLoginInput{Code: "bad-code"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthProvider)
}

func TestUserService_KakaoLogin_ProfileFetchFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.kakao.EXPECT().ExchangeCode(ctx, "auth-code").Return("access-token", nil)
	fx.kakao.EXPECT().
		GetUserInfo(ctx, "access-token").
		Return(nil, errors.New("user info endpoint returned status 401"))

	output, err := fx.service.KakaoLogin(ctx, &usecase.KakaoLoginInput{Code: "auth-code"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthProvider)
}

func TestUserService_GetUserSummary_RestrictedProjection(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.User{
		ID:            42,
		Nickname:      "gopher",
		Email:         "gopher@example.com",
		Job:           "student",
		ProfileImgURL: "https://img.example/42.jpg",
	}, nil)

	summary, err := fx.service.GetUserSummary(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, &usecase.UserSummary{
		ID:            42,
		Nickname:      "gopher",
		ProfileImgURL: "https://img.example/42.jpg",
	}, summary)
}

func TestUserService_GetUserSummary_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	summary, err := fx.service.GetUserSummary(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindAll(ctx).Return([]*entity.User{
		{ID: 1, Nickname: "first"},
		{ID: 2, Nickname: "second", Credential: &entity.Credential{PasswordHash: "h", Salt: "s"}},
	}, nil)

	views, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(1), views[0].ID)
	assert.Equal(t, "second", views[1].Nickname)
}
