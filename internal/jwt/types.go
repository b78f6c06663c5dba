package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Auth handles JWT authentication
type Auth interface {
	Sign(subject, role string) (string, error)
	Verify(tokenString string) (*Payload, error)
}

// Payload represents the JWT token payload
type Payload struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}
