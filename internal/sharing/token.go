package sharing

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// shareTokenBytes is 256 bits of entropy, 43 characters once encoded
const shareTokenBytes = 32

// TokenGenerator mints share tokens
type TokenGenerator interface {
	NewToken() (string, error)
}

// IDGenerator mints group identifiers
type IDGenerator interface {
	NewID() string
}

// GenerateShareToken returns an unpredictable URL-safe token
func GenerateShareToken() (string, error) {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// RandomTokens is the crypto/rand backed TokenGenerator
type RandomTokens struct{}

func (RandomTokens) NewToken() (string, error) {
	return GenerateShareToken()
}

// UUIDs is the uuid v4 backed IDGenerator
type UUIDs struct{}

func (UUIDs) NewID() string {
	return uuid.NewString()
}

// ShareURL builds the public join link for a token
func ShareURL(baseURL, token string) string {
	if baseURL == "" || token == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/join/" + url.PathEscape(token)
}
