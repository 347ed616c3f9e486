package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"usermgr/config"
	"usermgr/internal/delivery"
	"usermgr/internal/delivery/console"
	"usermgr/internal/domain/validation"
	"usermgr/internal/infra/auth"
	logs "usermgr/internal/infra/log"
	"usermgr/internal/infra/persistence/sqlite"
	"usermgr/internal/usecase/impl"

	"go.uber.org/fx"
)

type startMenuParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectTerminal(),
		fx.Provide(
			sqlite.NewUserRepository,
			auth.NewSHA256Hasher,
			validation.NewUserValidator,
			impl.NewUserService,
			fx.Annotate(
				console.NewDelivery,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startMenu,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
		// Logs go to stderr so they never interleave with the menu.
		func() io.Writer { return os.Stderr },
	)
}

func injectTerminal() fx.Option {
	opts := []fx.Option{
		fx.Provide(
			fx.Annotate(
				func() io.Reader { return os.Stdin },
				fx.ResultTags(`name:"consoleIn"`),
			),
			fx.Annotate(
				func() io.Writer { return os.Stdout },
				fx.ResultTags(`name:"consoleOut"`),
			),
		),
	}

	if passwords := console.NewTerminalPasswordReader(os.Stdout); passwords != nil {
		opts = append(opts, fx.Provide(func() console.PasswordReader { return passwords }))
	}

	return fx.Options(opts...)
}

func startMenu(ctx context.Context, params startMenuParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Console menu failed", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
