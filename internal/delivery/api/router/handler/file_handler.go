package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/middleware"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/response"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FileHandler serves uploads, listings and content reads of file tree nodes.
type FileHandler struct {
	uc usecase.FileUsecase
}

// NewFileHandler is the constructor for FileHandler, injected by Fx.
func NewFileHandler(uc usecase.FileUsecase) *FileHandler {
	return &FileHandler{uc: uc}
}

// parentRef is the parentId of an upload. Absent, null, 0, "" and "0" all name the root.
type parentRef struct {
	id      *uuid.UUID
	invalid bool
}

// UnmarshalJSON accepts a UUID string or one of the root spellings.
func (p *parentRef) UnmarshalJSON(data []byte) error {
	*p = parentRef{}

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err == nil {
		if number.String() != "0" {
			p.invalid = true
		}

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		p.invalid = true

		return nil //nolint:nilerr // an unusable parent is reported as not found
	}

	p.id, p.invalid = parseParentID(raw)

	return nil
}

// parseParentID maps the textual parent forms onto a nullable ID.
func parseParentID(raw string) (id *uuid.UUID, invalid bool) {
	if raw == "" || raw == "0" {
		return nil, false
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		return nil, true
	}

	return &parsed, false
}

type uploadFileRequest struct {
	Name     string    `json:"name" validate:"max=255"`
	Type     string    `json:"type"`
	ParentID parentRef `json:"parentId"`
	IsPublic bool      `json:"isPublic"`
	Data     string    `json:"data"`
}

type fileResponse struct {
	ID       uuid.UUID  `json:"id"`
	UserID   uuid.UUID  `json:"userId"`
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	IsPublic bool       `json:"isPublic"`
	ParentID *uuid.UUID `json:"parentId"`
}

func toFileResponse(file *entity.File) fileResponse {
	return fileResponse{
		ID:       file.ID,
		UserID:   file.OwnerID,
		Name:     file.Name,
		Type:     file.Type.String(),
		IsPublic: file.IsPublic,
		ParentID: file.ParentID,
	}
}

// Upload creates a folder, file or image.
func (h *FileHandler) Upload(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req uploadFileRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}
	if req.ParentID.invalid {
		return response.HandleAppError(c, domainerrors.ErrParentNotFound)
	}

	file, err := h.uc.Upload(c.Request().Context(), userID, &usecase.UploadInput{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID.id,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toFileResponse(file))
}

// Show returns one of the caller's nodes.
func (h *FileHandler) Show(c echo.Context) error {
	return h.ownedAction(c, h.uc.Show)
}

// Publish makes a node's content readable by anyone.
func (h *FileHandler) Publish(c echo.Context) error {
	return h.ownedAction(c, h.uc.Publish)
}

// Unpublish restricts a node's content to its owner.
func (h *FileHandler) Unpublish(c echo.Context) error {
	return h.ownedAction(c, h.uc.Unpublish)
}

// List returns one page of the caller's nodes under the parentId query parameter.
func (h *FileHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	parentID, invalid := parseParentID(c.QueryParam("parentId"))
	if invalid {
		// No node can live under an unparsable parent.
		return response.Success(c, http.StatusOK, []fileResponse{})
	}

	files, err := h.uc.List(c.Request().Context(), userID, parentID, parsePage(c.QueryParam("page")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]fileResponse, 0, len(files))
	for _, file := range files {
		out = append(out, toFileResponse(file))
	}

	return response.Success(c, http.StatusOK, out)
}

// Content streams a node's bytes, or a thumbnail when the size query parameter is set.
// Anonymous callers may read public nodes.
func (h *FileHandler) Content(c echo.Context) error {
	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c)
	}

	size := 0
	if raw := c.QueryParam("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return response.NotFound(c)
		}
	}

	userID, _ := middleware.GetUserID(c)
	content, err := h.uc.Content(c.Request().Context(), userID, fileID, size)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, content.ContentType, content.Data)
}

// parsePage reads the page query parameter. Unparsable values select the first page and
// positive values too large for an int select a page past every listing.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err == nil {
		return page
	}
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return math.MaxInt
	}

	return 0
}

func (h *FileHandler) ownedAction(c echo.Context, action func(ctx context.Context, userID, fileID uuid.UUID) (*entity.File, error)) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c)
	}

	file, err := action(c.Request().Context(), userID, fileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFileResponse(file))
}
