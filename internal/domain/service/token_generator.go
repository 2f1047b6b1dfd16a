package service

// TokenGenerator issues opaque session tokens and derives their storage keys.
type TokenGenerator interface {
	// Generate returns a new unguessable bearer token.
	Generate() (string, error)

	// Hash derives the key a token is stored under.
	Hash(token string) string
}
