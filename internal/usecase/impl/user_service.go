package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "vivaha/internal/delivery/context"
	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	"vivaha/internal/domain/service"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and sends the welcome email. Email delivery
// is best effort; a mailer outage never fails a registration.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() || role == entity.RoleAdmin {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).WarnContext(ctx, "password validation failed during registration",
			slog.String("email", input.Email),
			slog.Any("error", err))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("password does not meet security requirements")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	if err := srv.mailer.Send(ctx, welcomeEmail(user)); err != nil {
		srv.log(ctx).WarnContext(ctx, "failed to send welcome email",
			slog.String("userID", user.ID.String()),
			slog.Any("error", err))
	}

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and issues a token pair. Unknown emails and
// wrong passwords produce the same error so the endpoint cannot be used to
// probe which addresses have accounts.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}
	if claims.Type != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("token is not a refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.RefreshOutput{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// GetProfile returns the account for the given user id.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// CompleteOnboarding stores the questionnaire answers and marks onboarding done.
func (srv *userService) CompleteOnboarding(ctx context.Context, input usecase.CompleteOnboardingInput) (*entity.User, error) {
	if err := srv.userRepo.UpdateOnboarding(ctx, input.UserID, input.Data); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload user")
	}

	return user, nil
}

// UpdateNavigation stores the user's dashboard navigation customization.
func (srv *userService) UpdateNavigation(ctx context.Context, input usecase.UpdateNavigationInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	user.NavigationPrefs = entity.NavigationPrefs{
		Order:  input.Order,
		Hidden: input.Hidden,
	}
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}

	return user, nil
}

func welcomeEmail(user *entity.User) service.Email {
	name := user.Name
	if name == "" {
		name = "there"
	}

	return service.Email{
		To:      user.Email,
		Subject: "Welcome to Vivaha",
		HTML: fmt.Sprintf(
			"<h1>Hi %s!</h1><p>Your wedding planning space is ready. "+
				"Start with your guest list, set a budget, and we'll keep everything in sync across your devices.</p>",
			name),
	}
}
