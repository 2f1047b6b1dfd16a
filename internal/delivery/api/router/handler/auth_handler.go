package handler

import (
	"net/http"

	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/response"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/constants"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler exchanges credentials for session tokens.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type connectResponse struct {
	Token string `json:"token"`
}

// Connect signs in with HTTP Basic credentials and returns a new session token.
func (h *AuthHandler) Connect(c echo.Context) error {
	credentials, err := usecase.ParseBasicCredentials(c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.uc.CreateSession(c.Request().Context(), credentials)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, connectResponse{Token: token})
}

// Disconnect revokes the session named by the X-Token header.
func (h *AuthHandler) Disconnect(c echo.Context) error {
	token := c.Request().Header.Get(constants.HeaderXToken)
	if err := h.uc.RevokeSession(c.Request().Context(), token); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
