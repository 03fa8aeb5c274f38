package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
)

// Claims are the JWT claims carried by an access token. The role is embedded
// so middleware can gate routes without a second lookup, but the user record
// is still resolved on every request so a role change takes effect
// immediately.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless HS256 bearer tokens
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a token service with the given secret and expiry
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Generate issues a signed token for the user
func (s *TokenService) Generate(u *user.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: u.ID.String(),
		Role:   u.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token string and returns its claims
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, errors.New("invalid user id in token")
	}

	return claims, nil
}
