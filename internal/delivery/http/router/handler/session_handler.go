package handler

import (
	"log/slog"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginRequest is the sign-in form. The password is checked for shape only.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest is the account creation form.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// AddressRequest is a shipping address form.
type AddressRequest struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required,postalcode"`
	Country    string `json:"country" validate:"required"`
}

func (r *AddressRequest) toEntity() entity.Address {
	return entity.Address{
		Street:     r.Street,
		City:       r.City,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// UpdateUserRequest is a partial profile. Omitted fields are left unchanged.
type UpdateUserRequest struct {
	Email     *string         `json:"email" validate:"omitempty,email"`
	FirstName *string         `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string         `json:"lastName" validate:"omitempty,min=1"`
	Address   *AddressRequest `json:"address" validate:"omitempty"`
}

// SessionHandler holds dependencies for sign-in and profile handlers.
type SessionHandler struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(session usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		session: session,
		logger:  logger,
	}
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.OK(c, h.session.GetSession(c.Request().Context()), "")
}

// Login handles POST /session/login
func (h *SessionHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(err)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	h.session.Login(ctx, entity.UserProfile{Email: input.Email})

	return response.OK(c, h.session.GetSession(ctx), "Welcome back")
}

// Register handles POST /session/register. The new account is signed in at once.
func (h *SessionHandler) Register(c echo.Context) error {
	var input RegisterRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(err)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	h.session.Login(ctx, entity.UserProfile{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})

	return response.OK(c, h.session.GetSession(ctx), "Account created")
}

// Logout handles POST /session/logout
func (h *SessionHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	h.session.Logout(ctx)

	return response.OK(c, h.session.GetSession(ctx), "Signed out")
}

// UpdateUser handles PATCH /session/user
func (h *SessionHandler) UpdateUser(c echo.Context) error {
	var input UpdateUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(err)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	patch := entity.UserPatch{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if input.Address != nil {
		address := input.Address.toEntity()
		patch.Address = &address
	}

	ctx := c.Request().Context()
	if !h.session.UpdateUser(ctx, patch) {
		return domainerrors.ErrNotAuthenticated
	}

	return response.OK(c, h.session.GetSession(ctx), "Profile updated")
}
