package impl

import (
	"context"
	"log/slog"

	deliverycontext "adboard/internal/delivery/context"
	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/domain/policy"
	"adboard/internal/domain/repository"
	"adboard/internal/domain/service"
	"adboard/internal/errors"
	"adboard/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	images   service.ImageStorage
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		images:   params.ImageStorage,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCurrentUser returns the caller's account.
func (srv *userService) GetCurrentUser(ctx context.Context, principal entity.Principal) (*usecase.UserOutput, error) {
	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	return toUserOutput(user), nil
}

// SetPassword replaces the caller's password after verifying the current one.
func (srv *userService) SetPassword(ctx context.Context, principal entity.Principal, input *usecase.SetPasswordInput) error {
	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected: current password mismatch", slog.Int64("userID", user.ID))

		return errors.WithStack(domainerrors.ErrIncorrectPassword)
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return updateFailure(err, "user")
	}

	srv.log(ctx).Info("Password changed", slog.Int64("userID", user.ID))

	return nil
}

// UpdateProfile replaces the caller's name and phone.
func (srv *userService) UpdateProfile(ctx context.Context, principal entity.Principal, input *usecase.UpdateUserInput) (*usecase.UpdateUserOutput, error) {
	if !entity.ValidatePhone(input.Phone) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPhone, "phone %q", input.Phone)
	}

	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, updateFailure(err, "user")
	}

	return &usecase.UpdateUserOutput{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
	}, nil
}

// UpdateUserImage saves the new avatar, persists its path and then drops the previous file.
func (srv *userService) UpdateUserImage(ctx context.Context, principal entity.Principal, image *usecase.ImageUpload) error {
	if image == nil || len(image.Data) == 0 {
		return errors.WithStack(domainerrors.ErrEmptyImage)
	}

	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return err
	}

	path, err := srv.images.Save(ctx, image.Data, image.Filename, service.ImageNamespaceUsers)
	if err != nil {
		return errors.Wrap(err, "failed to store avatar")
	}

	previous := derefString(user.ImagePath)
	user.ImagePath = &path

	if err := srv.userRepo.Update(ctx, user); err != nil {
		discardImage(ctx, srv.images, srv.log(ctx), path)

		return updateFailure(err, "user")
	}

	discardImage(ctx, srv.images, srv.log(ctx), previous)

	return nil
}

// GetUserImage returns the avatar bytes of the named user.
func (srv *userService) GetUserImage(ctx context.Context, username string) ([]byte, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", username)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !user.HasImage() {
		return nil, errors.Wrapf(domainerrors.ErrImageNotFound, "user %s has no image", username)
	}

	data, err := srv.images.Load(ctx, *user.ImagePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load avatar")
	}

	return data, nil
}

// ListUsers returns every account to an administrator.
func (srv *userService) ListUsers(ctx context.Context, principal entity.Principal) ([]*usecase.UserOutput, error) {
	actor, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, 0, policy.RequireAdmin); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	out := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		out = append(out, toUserOutput(user))
	}

	return out, nil
}
