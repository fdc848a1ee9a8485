// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "studyhub/internal/delivery/context"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/repository"
	"studyhub/internal/domain/service"
	"studyhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	hasher           service.PasswordHasher
	kakaoAuthService service.KakaoAuthService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	Hasher           service.PasswordHasher
	KakaoAuthService service.KakaoAuthService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		hasher:           params.Hasher,
		kakaoAuthService: params.KakaoAuthService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new password-authenticated account. The nickname check
// runs before the email check, so a request that collides on both reports the
// nickname conflict.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) error {
	srv.log(ctx).Info("Starting signup", slog.String("nickname", input.Nickname))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByNickname(ctx, input.Nickname); err == nil {
			return errors.Wrap(domainerrors.ErrNicknameTaken, "signup rejected")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check nickname availability")
		}

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return errors.Wrap(domainerrors.ErrEmailTaken, "signup rejected")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		hash, salt, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during signup")
		}

		newUser := &entity.User{
			Nickname: input.Nickname,
			Email:    input.Email,
			Birthday: input.Birthday,
			Job:      input.Job,
			Credential: &entity.Credential{
				PasswordHash: hash,
				Salt:         salt,
			},
		}

		return userRepo.Create(ctx, newUser)
	})

	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("nickname", input.Nickname), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.String("nickname", input.Nickname))

	return nil
}

// Login verifies a nickname/password pair and returns the account id.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("nickname", input.Nickname))

	user, err := srv.userRepo.FindByNickname(ctx, input.Nickname)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed: unknown nickname", slog.String("nickname", input.Nickname))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by nickname")
	}

	// An account missing either stored field can never verify a password.
	// This covers OAuth-only accounts and corrupted rows alike.
	if !user.HasCredential() {
		srv.log(ctx).Error("Login failed: stored credential incomplete", slog.Int64("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrCredentialCorrupted, "login failed")
	}

	if !srv.hasher.Check(input.Password, user.Credential.Salt, user.Credential.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.Int64("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidPassword, "login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{ID: user.ID}, nil
}

// KakaoLogin resolves a Kakao authorization code to a local account, creating
// an OAuth-only account on first login. Profile fields captured at creation
// are not refreshed on subsequent logins.
func (srv *userService) KakaoLogin(ctx context.Context, input *usecase.KakaoLoginInput) (*usecase.KakaoLoginOutput, error) {
	srv.log(ctx).Info("Handling Kakao login")

	accessToken, err := srv.kakaoAuthService.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Kakao token exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthProvider, "failed to exchange Kakao authorization code")
	}

	oauthUser, err := srv.kakaoAuthService.GetUserInfo(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Warn("Kakao profile fetch failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthProvider, "failed to fetch Kakao user profile")
	}

	user, err := srv.findOrCreateKakaoUser(ctx, oauthUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve Kakao account")
	}

	return &usecase.KakaoLoginOutput{User: usecase.NewUserView(user)}, nil
}

// findOrCreateKakaoUser finds an existing account by Kakao id or creates a new one.
func (srv *userService) findOrCreateKakaoUser(ctx context.Context, oauthUser *service.OAuthUser) (*entity.User, error) {
	user, err := srv.userRepo.FindByKakaoID(ctx, oauthUser.ID)
	if err == nil {
		srv.log(ctx).Debug("Found existing Kakao user", slog.Int64("userID", user.ID))

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by Kakao id")
	}

	srv.log(ctx).Info("Kakao user not found, creating new user", slog.String("kakaoID", oauthUser.ID))

	newUser := &entity.User{
		Nickname:      oauthUser.Nickname,
		ProfileImgURL: oauthUser.ProfileImageURL,
		KakaoID:       oauthUser.ID,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for Kakao authentication")
	}

	return newUser, nil
}

// GetUserSummary returns the restricted profile projection for one user.
func (srv *userService) GetUserSummary(ctx context.Context, userID int64) (*usecase.UserSummary, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user summary lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return usecase.NewUserSummary(user), nil
}

// ListUsers returns the public projection of every account.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserView, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	views := make([]*usecase.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, usecase.NewUserView(user))
	}

	return views, nil
}
