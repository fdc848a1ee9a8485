package main

import (
	"context"
	"log/slog"
	"os"

	"studyhub/config"
	"studyhub/internal/delivery"
	"studyhub/internal/delivery/http"
	"studyhub/internal/delivery/http/middleware"
	"studyhub/internal/delivery/http/router/handler"
	"studyhub/internal/infra/assets"
	"studyhub/internal/infra/auth"
	"studyhub/internal/infra/auth/kakao"
	logs "studyhub/internal/infra/log"
	"studyhub/internal/infra/persistence/postgres"
	"studyhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			postgres.NewUserRepository,
			postgres.NewStudyRepository,
			postgres.NewLikeStudyRepository,
			postgres.NewJoinStudyRepository,
			postgres.NewNoticeRepository,
			postgres.NewTaskRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPBKDF2Hasher,
			kakao.NewOAuthService,
			assets.NewStudyImageURLBuilder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewFeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
