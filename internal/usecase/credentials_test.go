package usecase

import (
	"encoding/base64"
	"testing"

	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basic(payload string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestParseBasicCredentials(t *testing.T) {
	creds, err := ParseBasicCredentials(basic("a@x.com:pw123"))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", creds.Email)
	assert.Equal(t, "pw123", creds.Password)
}

func TestParseBasicCredentials_PasswordWithColon(t *testing.T) {
	creds, err := ParseBasicCredentials(basic("a@x.com:p:w:d"))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", creds.Email)
	assert.Equal(t, "p:w:d", creds.Password)
}

func TestParseBasicCredentials_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":             "",
		"bearer scheme":     "Bearer abc",
		"not base64":        "Basic !!!",
		"missing separator": basic("a@x.com"),
		"empty email":       basic(":pw"),
		"empty password":    basic("a@x.com:"),
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBasicCredentials(header)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		})
	}
}
