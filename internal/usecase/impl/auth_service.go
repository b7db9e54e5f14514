package impl

import (
	"context"
	"log/slog"

	deliverycontext "adboard/internal/delivery/context"
	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/domain/repository"
	"adboard/internal/domain/service"
	"adboard/internal/errors"
	"adboard/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues an access token bound to the username.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := srv.tokenService.IssueToken(user.Username, user.Role.Authority())
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{Token: token, ExpiresAt: expiresAt}, nil
}

// Authenticate checks the password of the named account.
// Both failure paths return ErrInvalidCredentials; the missing-account path also matches repository.ErrUserNotFound.
func (srv *authService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Debug("Login rejected: unknown username")

		return nil, errors.WithStack(errors.Join(domainerrors.ErrInvalidCredentials, repository.ErrUserNotFound))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Debug("Login rejected: password mismatch", slog.Int64("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return user, nil
}

// Register creates a new account. A taken username reports false without error.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (bool, error) {
	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return false, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown role %q", input.Role)
	}

	if !entity.ValidatePhone(input.Phone) {
		return false, errors.Wrapf(domainerrors.ErrInvalidPhone, "phone %q", input.Phone)
	}

	exists, err := srv.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}
	if exists {
		srv.log(ctx).Info("Registration skipped: username taken", slog.String("username", input.Username))

		return false, nil
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return false, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Registration lost a race on username", slog.String("username", input.Username))

			return false, nil
		}

		return false, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("role", role.String()))

	return true, nil
}

// ParsePrincipal validates a bearer token and returns the identity it carries.
func (srv *authService) ParsePrincipal(_ context.Context, token string) (entity.Principal, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return entity.Principal{}, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	role, ok := entity.RoleFromAuthority(claims.Role)
	if !ok {
		return entity.Principal{}, errors.Wrapf(domainerrors.ErrUnauthenticated, "unknown authority %q", claims.Role)
	}

	return entity.Principal{Username: claims.Subject, Role: role}, nil
}
