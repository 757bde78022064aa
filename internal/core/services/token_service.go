package services

import (
	"errors"
	"time"

	"github.com/churn/api/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies HS256-signed bearer tokens. The signing
// key is fixed at construction; there is no rotation and no revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: secret,
		ttl:    ttl,
	}
}

func (s *TokenService) Issue(subject string) (string, time.Duration, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, s.ttl, nil
}

func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenMalformed
	}
	if !token.Valid {
		return "", domain.ErrTokenMalformed
	}
	if claims.Subject == "" {
		return "", domain.ErrTokenMissingSubject
	}
	return claims.Subject, nil
}
