package auth

import "github.com/golang-jwt/jwt/v5"

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the custom JWT claims for the admin surface. There is one
// principal ("admin"); the claims exist to bind token type and lifetime,
// not to model users.
type Claims struct {
	jwt.RegisteredClaims
	TokenType TokenType `json:"token_type"`
}
