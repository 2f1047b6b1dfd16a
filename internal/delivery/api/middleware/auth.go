package middleware

import (
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/response"
	deliverycontext "github.com/IbrahimMurad/alx-files-manager/internal/delivery/context"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/constants"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves the X-Token header into a principal.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate rejects the request with 401 unless X-Token resolves to a live session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(constants.HeaderXToken)
		if token == "" {
			return response.Unauthorized(c)
		}

		principal, err := m.auth.ResolveSession(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				return response.Unauthorized(c)
			}

			return errors.WithStack(err)
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// OptionalAuthenticate attaches a principal when X-Token resolves and continues anonymously otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(constants.HeaderXToken)
		if token == "" {
			return next(c)
		}

		principal, err := m.auth.ResolveSession(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				return next(c)
			}

			return errors.WithStack(err)
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// GetUserID returns the authenticated user's ID, or uuid.Nil and false for anonymous requests.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return uuid.Nil, false
	}

	return principal.UserID(), true
}
