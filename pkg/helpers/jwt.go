package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and validates registration tokens
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

// TokenUser is the user object embedded in the token payload.
type TokenUser struct {
	ID string `json:"id"`
}

// Claims encodes {"user":{"id":...}} plus the registered exp/iat claims.
type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// Sign issues an HS256 token for userID that expires after m.TTL.
func (m *JWTManager) Sign(userID string) (string, time.Time, error) {
	if len(m.Secret) == 0 {
		return "", time.Time{}, errors.New("jwt secret not configured")
	}
	now := time.Now()
	exp := now.Add(m.TTL)
	claims := &Claims{
		User: TokenUser{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
