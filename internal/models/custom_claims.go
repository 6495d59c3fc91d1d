package models

import "github.com/golang-jwt/jwt/v5"

const TokenTypeAccess = "access"

// CustomClaims are the claims carried by an access token. The registered ID is the JTI
// used for sign-out.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}
