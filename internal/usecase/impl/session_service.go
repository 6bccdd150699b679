package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
// It tracks who is browsing; it does not authenticate anyone.
type sessionService struct {
	engine *Engine
	logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(engine *Engine, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		engine: engine,
		logger: logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *sessionService) Login(ctx context.Context, profile entity.UserProfile) {
	srv.engine.mutate(ctx, "login", func(s *entity.State) bool {
		s.Session.Login(profile)

		return true
	})

	srv.log(ctx).Info("Shopper signed in", slog.String("email", profile.Email))
}

func (srv *sessionService) Logout(ctx context.Context) {
	srv.engine.mutate(ctx, "logout", func(s *entity.State) bool {
		if !s.Session.IsAuthenticated && s.Session.User == nil {
			return false
		}
		s.Session.Logout()

		return true
	})

	srv.log(ctx).Info("Shopper signed out")
}

// UpdateUser merges the non-nil fields of patch into the profile.
func (srv *sessionService) UpdateUser(ctx context.Context, patch entity.UserPatch) bool {
	updated := srv.engine.mutate(ctx, "update_user", func(s *entity.State) bool {
		return s.Session.ApplyPatch(patch)
	})

	if !updated {
		srv.log(ctx).Debug("Profile update ignored, nobody is signed in")
	}

	return updated
}

func (srv *sessionService) GetSession(ctx context.Context) entity.Session {
	var session entity.Session
	srv.engine.view(func(s *entity.State) {
		session = s.Session.Clone()
	})

	return session
}
