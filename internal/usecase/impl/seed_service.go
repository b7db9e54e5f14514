package impl

import (
	"context"
	"log/slog"

	"adboard/config"
	"adboard/internal/errors"
	"adboard/internal/usecase"

	"go.uber.org/fx"
)

// seedService registers configured accounts through the auth usecase.
type seedService struct {
	auth   usecase.AuthUsecase
	users  []config.SeedUser
	logger *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	Auth   usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	var users []config.SeedUser
	if params.Config != nil && params.Config.Seed != nil {
		users = params.Config.Seed.Users
	}

	return &seedService{auth: params.Auth, users: users, logger: params.Logger}
}

// SeedUsers registers every configured account, skipping those that already exist.
func (srv *seedService) SeedUsers(ctx context.Context) error {
	for _, u := range srv.users {
		created, err := srv.auth.Register(ctx, &usecase.RegisterInput{
			Username:  u.Username,
			Password:  u.Password,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Phone:     u.Phone,
			Role:      u.Role,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to seed user %s", u.Username)
		}

		if created {
			srv.logger.Info("Seed user created", slog.String("username", u.Username))
		} else {
			srv.logger.Debug("Seed user already present", slog.String("username", u.Username))
		}
	}

	return nil
}
