package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "domain validation error",
			err:      errors.WithStack(domainerrors.NewMissingFieldError("name")),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing name"}`,
		},
		{
			name:     "domain server error hides message",
			err:      domainerrors.ErrStorageWriteFailed,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
		{
			name:     "unknown route",
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Not found"}`,
		},
		{
			name:     "body too large",
			err:      echo.ErrStatusRequestEntityTooLarge,
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: `{"error":"Request Entity Too Large"}`,
		},
		{
			name:     "unexpected error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
