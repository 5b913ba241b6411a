package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtClaims is the wire representation of Claims, extending the
// registered JWT claims with the application fields.
type jwtClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// hmacJWTService implements JWTService with HMAC-SHA256 signed tokens.
type hmacJWTService struct {
	secret   []byte
	lifetime time.Duration
}

// NewJWTService creates a JWTService signing tokens with the given
// secret. Tokens are valid for the given lifetime.
func NewJWTService(secret string, lifetime time.Duration) (JWTService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret cannot be empty")
	}
	if lifetime <= 0 {
		lifetime = time.Hour
	}

	return &hmacJWTService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}, nil
}

// GenerateToken implements JWTService.GenerateToken
func (s *hmacJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	now := time.Now().UTC()
	claims := jwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken implements JWTService.ValidateToken
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: claims.UserID}, nil
}
