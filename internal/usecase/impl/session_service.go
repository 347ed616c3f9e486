package impl

import (
	"context"
	"log/slog"

	deliverycontext "usermgr/internal/delivery/context"
	domainerrors "usermgr/internal/domain/errors"
	"usermgr/internal/domain/service"
	"usermgr/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface on top of the user service.
type sessionService struct {
	users        usecase.UserUsecase
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Users        usecase.UserUsecase
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		users:        params.Users,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates the credentials and issues an access token.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	result := srv.users.Authenticate(ctx, input.Username, input.Password)
	if !result.Success() {
		return nil, result.Err()
	}

	user := result.User()
	token, err := srv.tokenService.GenerateToken(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to issue access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   srv.tokenService.TokenDuration(),
		User:        user,
	}, nil
}
