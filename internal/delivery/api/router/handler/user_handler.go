package handler

import (
	"net/http"

	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/response"
	deliverycontext "github.com/IbrahimMurad/alx-files-manager/internal/delivery/context"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type registerUserRequest struct {
	Email    string `json:"email" validate:"max=254"`
	Password string `json:"password" validate:"max=72"`
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{ID: user.ID, Email: user.Email}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// Me returns the authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.uc.Me(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
