package model

import "github.com/golang-jwt/jwt/v5"

// TokenKind selects which signing secret and validity window apply to a
// token. Each kind has its own secret; verifying a token of one kind
// against another kind's secret must fail.
type TokenKind int

const (
	TokenAccess TokenKind = iota
	TokenRefresh
	TokenForgotPassword
	TokenEmailVerify
)

func (k TokenKind) String() string {
	switch k {
	case TokenAccess:
		return "access"
	case TokenRefresh:
		return "refresh"
	case TokenForgotPassword:
		return "forgot_password"
	case TokenEmailVerify:
		return "email_verify"
	}
	return "unknown"
}

type AppClaims struct {
	UserID    string    `json:"user_id"`
	TokenType TokenKind `json:"token_type"`
	jwt.RegisteredClaims
}
