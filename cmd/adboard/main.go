package main

import (
	"context"
	"log/slog"
	"os"

	"adboard/config"
	"adboard/internal/delivery"
	"adboard/internal/delivery/api"
	"adboard/internal/delivery/api/middleware"
	"adboard/internal/delivery/api/router/handler"
	"adboard/internal/domain/lifecycle"
	"adboard/internal/errors"
	"adboard/internal/infra/auth"
	logs "adboard/internal/infra/log"
	"adboard/internal/infra/metrics"
	"adboard/internal/infra/persistence/postgres"
	"adboard/internal/infra/pubsub"
	"adboard/internal/infra/qrcode"
	"adboard/internal/infra/storage"
	"adboard/internal/usecase"
	"adboard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	Seeder usecase.SeedUsecase
	Logger *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedUsers,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAdRepository,
			postgres.NewCommentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
			qrcode.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAdService,
			impl.NewCommentService,
			impl.NewUserService,
			impl.NewSeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAdHandler,
			handler.NewCommentHandler,
			handler.NewUserHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedUsers registers the configured accounts once the database hooks have run.
func seedUsers(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seedCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := params.Seeder.SeedUsers(seedCtx); err != nil {
				return errors.Wrap(err, "failed to seed users")
			}
			params.Logger.Info("Seed accounts ready")

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
