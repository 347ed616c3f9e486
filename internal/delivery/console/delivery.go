package console

import (
	"context"
	"io"
	"log/slog"

	"usermgr/internal/delivery"
	"usermgr/internal/usecase"

	"go.uber.org/fx"
)

// Params holds dependencies for the console delivery, injected by Fx.
type Params struct {
	fx.In

	Users      usecase.UserUsecase
	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
	Input      io.Reader      `name:"consoleIn"`
	Out        io.Writer      `name:"consoleOut"`
	Passwords  PasswordReader `optional:"true"`
}

type consoleServer struct {
	menu       *Menu
	logger     *slog.Logger
	shutdowner fx.Shutdowner
}

// NewDelivery wraps the menu as a delivery that stops the application when
// the user exits.
func NewDelivery(params Params) delivery.Delivery {
	var opts []Option
	if params.Passwords != nil {
		opts = append(opts, WithPasswordReader(params.Passwords))
	}

	return &consoleServer{
		menu:       NewMenu(params.Users, params.Input, params.Out, opts...),
		logger:     params.Logger,
		shutdowner: params.Shutdowner,
	}
}

func (s *consoleServer) Serve(ctx context.Context) error {
	s.logger.Debug("Starting console menu")
	err := s.menu.Run(ctx)
	if shutdownErr := s.shutdowner.Shutdown(); shutdownErr != nil {
		s.logger.Error("failed to request shutdown", slog.Any("error", shutdownErr))
	}

	return err
}
