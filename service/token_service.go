// file: service/token_service.go

package service

import (
	"fmt"
	"go-auth-api/common"
	"go-auth-api/config"
	"go-auth-api/logger"
	"go-auth-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validity windows per token kind.
const (
	accessTokenTTL         = 24 * time.Hour
	refreshTokenTTL        = 7 * 24 * time.Hour
	forgotPasswordTokenTTL = 3 * 24 * time.Hour
	emailVerifyTokenTTL    = 24 * time.Hour
)

// TokenService signs and verifies the four token kinds. Each kind is bound
// to its own secret, so an access token can never be verified against the
// refresh secret and vice versa.
type TokenService struct {
	cfg config.JWTConfig
}

func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{cfg: cfg}
}

func (s *TokenService) secretFor(kind model.TokenKind) []byte {
	switch kind {
	case model.TokenAccess:
		return []byte(s.cfg.AccessSecret)
	case model.TokenRefresh:
		return []byte(s.cfg.RefreshSecret)
	case model.TokenForgotPassword:
		return []byte(s.cfg.ForgotPasswordSecret)
	case model.TokenEmailVerify:
		return []byte(s.cfg.EmailVerifySecret)
	}
	return nil
}

func ttlFor(kind model.TokenKind) time.Duration {
	switch kind {
	case model.TokenAccess:
		return accessTokenTTL
	case model.TokenRefresh:
		return refreshTokenTTL
	case model.TokenForgotPassword:
		return forgotPasswordTokenTTL
	case model.TokenEmailVerify:
		return emailVerifyTokenTTL
	}
	return 0
}

// Issue produces a signed token carrying the subject id and kind. A signing
// failure is reported as an error, never as an empty token.
func (s *TokenService) Issue(userID string, kind model.TokenKind) (string, error) {
	return sign(userID, kind, s.secretFor(kind), ttlFor(kind))
}

func sign(userID string, kind model.TokenKind, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &model.AppClaims{
		UserID:    userID,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		logger.Log.WithError(err).WithField("token_kind", kind.String()).Error("Failed to sign token")
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}

	return tokenString, nil
}

// Verify checks the token against the secret of the given kind and returns
// its claims. Malformed, forged and expired tokens all collapse into
// common.ErrInvalidToken; callers do not need finer-grained codes.
func (s *TokenService) Verify(tokenString string, kind model.TokenKind) (*model.AppClaims, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return s.secretFor(kind), nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}

	if claims.TokenType != kind {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
