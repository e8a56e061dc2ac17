package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// ErrInvalidToken is returned when a token fails parsing, signature
// verification, or is missing the expected claims.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and verifies HS256 access tokens. The secret comes from
// configuration and is injected at construction.
type JWTManager struct {
	secret []byte
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret)}
}

// GenerateToken creates a signed JWT with the given email as subject.
// The token expires after the specified duration.
func (m *JWTManager) GenerateToken(email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func (m *JWTManager) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
}

// ExtractEmailFromToken extracts the email claim from a valid token string.
func (m *JWTManager) ExtractEmailFromToken(tokenString string) (string, error) {
	token, err := m.ValidateToken(tokenString)
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
