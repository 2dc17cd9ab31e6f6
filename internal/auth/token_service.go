package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "trainingdiary/internal/errors"
)

// Claims is the payload of an issued token.
type Claims struct {
	UserID string `json:"_id"`
	Access string `json:"access"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 signed tokens.
// Tokens carry no expiry: they stay valid until removed from the user's token list.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue signs a token binding userID to the access purpose.
func (s *TokenService) Issue(userID, access string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Access: access,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature of tokenString and returns its claims.
// Any failure is reported as ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" || claims.Access == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
