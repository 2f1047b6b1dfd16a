// Package handler contains the HTTP handlers of the public API.
package handler

import (
	"net/http"

	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/response"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AppHandler serves service status and statistics.
type AppHandler struct {
	uc usecase.AppUsecase
}

// NewAppHandler is the constructor for AppHandler, injected by Fx.
func NewAppHandler(uc usecase.AppUsecase) *AppHandler {
	return &AppHandler{uc: uc}
}

// Status reports whether the metadata store and the blob storage are reachable.
func (h *AppHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Status(c.Request().Context()))
}

// Stats reports the number of users and files.
func (h *AppHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
