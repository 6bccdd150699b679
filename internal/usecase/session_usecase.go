package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase defines the session operations. Credentials are never checked.
type SessionUsecase interface {
	Login(ctx context.Context, profile entity.UserProfile)
	Logout(ctx context.Context)
	// UpdateUser reports false when nobody is signed in.
	UpdateUser(ctx context.Context, patch entity.UserPatch) bool
	GetSession(ctx context.Context) entity.Session
}
