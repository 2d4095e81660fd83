package main

import (
	"context"
	"log/slog"
	"os"

	"storeradar/config"
	"storeradar/internal/delivery"
	"storeradar/internal/delivery/api"
	"storeradar/internal/delivery/api/middleware"
	"storeradar/internal/delivery/api/router/handler"
	"storeradar/internal/infra/auth"
	"storeradar/internal/infra/geocoding"
	logs "storeradar/internal/infra/log"
	"storeradar/internal/infra/persistence/postgres"
	"storeradar/internal/infra/pubsub"
	"storeradar/internal/infra/qrcode"
	"storeradar/internal/infra/report"
	"storeradar/internal/infra/storage"
	"storeradar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewStoreRepository,
			postgres.NewCategoryRepository,
			postgres.NewCommentRepository,
			postgres.NewGroupRepository,
			postgres.NewAssignmentRepository,
			postgres.NewVisitRepository,
			postgres.NewDeactivationRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geocoding.NewRaahClient,
			qrcode.NewQRCodeService,
			report.NewXLSXExporter,
			storage.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewStoreService,
			impl.NewLocalityService,
			impl.NewCommentService,
			impl.NewUploadService,
			impl.NewGroupService,
			impl.NewAssignmentService,
			impl.NewVisitService,
			impl.NewDeactivationService,
			impl.NewDeviceService,
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
			handler.NewStoreHandler,
			handler.NewLocalityHandler,
			handler.NewCommentHandler,
			handler.NewUploadHandler,
			handler.NewGroupHandler,
			handler.NewAssignmentHandler,
			handler.NewVisitHandler,
			handler.NewDeactivationHandler,
			handler.NewDeviceHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
