package usecase

import (
	"encoding/base64"
	"strings"

	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/errors"
)

const basicAuthScheme = "Basic "

// ParseBasicCredentials decodes an `Authorization: Basic base64(email:password)` header value.
// The payload is split at its first colon, so passwords may contain colons.
func ParseBasicCredentials(header string) (*Credentials, error) {
	if len(header) < len(basicAuthScheme) || !strings.EqualFold(header[:len(basicAuthScheme)], basicAuthScheme) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	payload, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(basicAuthScheme):]))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "malformed basic credentials")
	}

	email, password, ok := strings.Cut(string(payload), ":")
	if !ok || email == "" || password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "malformed basic credentials")
	}

	return &Credentials{Email: email, Password: password}, nil
}
