package impl

import (
	"context"
	"testing"

	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	"vivaha/internal/domain/service"
	"vivaha/internal/infra/auth"
	mockRepo "vivaha/internal/mocks/repository"
	mockSvc "vivaha/internal/mocks/service"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
	hasher       service.PasswordHasher
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	m := &userServiceMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		tokenService: mockSvc.NewMockTokenService(t),
		mailer:       mockSvc.NewMockMailer(t),
		hasher:       auth.NewBcryptHasher(),
	}
	svc := NewUserService(UserServiceParams{
		UserRepo:     m.userRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		Mailer:       m.mailer,
		Logger:       testLogger(),
	})

	return svc, m
}

func TestUserService_Register_HashesPasswordAndSendsWelcome(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	m.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("service.Email")).
		Return(nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "S3cret-Pass",
		Role:     entity.RoleBride,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBride, out.User.Role)
	assert.NotEqual(t, "S3cret-Pass", out.User.PasswordHash)
	assert.True(t, m.hasher.Check("S3cret-Pass", out.User.PasswordHash))
}

func TestUserService_Register_MailerOutageIsNotFatal(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	m.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("service.Email")).
		Return(errors.New("mailer down"))

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "asha@example.com",
		Password: "S3cret-Pass",
	})
	require.NoError(t, err)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrUserAlreadyExists)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Wh4tever-Strong!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_WeakPasswordRejected(t *testing.T) {
	svc, _ := newUserService(t)

	ctx := context.Background()

	// No uppercase letter; fails the strength policy before any repo call.
	_, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()
	hash, err := m.hasher.Hash("right-password")
	require.NoError(t, err)

	m.userRepo.EXPECT().
		FindByEmail(ctx, "asha@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "asha@example.com", PasswordHash: hash}, nil)

	_, err = svc.Login(ctx, usecase.LoginInput{Email: "asha@example.com", Password: "wrong-password"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailLooksLikeBadPassword(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "anything"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_IssuesTokenPair(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	hash, err := m.hasher.Hash("right-password")
	require.NoError(t, err)

	m.userRepo.EXPECT().
		FindByEmail(ctx, "asha@example.com").
		Return(&entity.User{ID: userID, Email: "asha@example.com", PasswordHash: hash, Role: entity.RoleUser}, nil)
	m.tokenService.EXPECT().
		GenerateTokens(userID, []string{"user"}).
		Return("access-token", "refresh-token", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "asha@example.com", Password: "right-password"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
}

func TestUserService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, m := newUserService(t)

	m.tokenService.EXPECT().
		ValidateToken("some-access-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "access"}, nil)

	_, err := svc.Refresh(context.Background(), "some-access-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_CompleteOnboarding(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	data := map[string]any{"weddingStyle": "garden", "guestEstimate": 120}

	m.userRepo.EXPECT().
		UpdateOnboarding(ctx, userID, data).
		Return(nil)
	m.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, OnboardingCompleted: true, OnboardingData: data}, nil)

	user, err := svc.CompleteOnboarding(ctx, usecase.CompleteOnboardingInput{UserID: userID, Data: data})
	require.NoError(t, err)
	assert.True(t, user.OnboardingCompleted)
	assert.Equal(t, "garden", user.OnboardingData["weddingStyle"])
}
