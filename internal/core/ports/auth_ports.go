package ports

import (
	"context"
	"time"
)

// TokenService issues and verifies signed, time-limited bearer tokens.
// Tokens are stateless: verification is purely a function of signature and
// expiry, so an issued token stays valid until it expires naturally.
type TokenService interface {
	Issue(subject string) (token string, expiresIn time.Duration, err error)
	Verify(token string) (subject string, err error)
}

type TokenOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int // seconds
}

type AuthService interface {
	// Register creates the user and auto-issues a token, so no separate
	// login step is required after registering.
	Register(ctx context.Context, username, password string) (*TokenOutput, error)
	Login(ctx context.Context, username, password string) (*TokenOutput, error)
}
