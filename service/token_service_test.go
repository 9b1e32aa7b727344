// file: service/token_service_test.go

package service

import (
	"go-auth-api/common"
	"go-auth-api/config"
	"go-auth-api/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessSecret:         "test-access-secret",
		RefreshSecret:        "test-refresh-secret",
		EmailVerifySecret:    "test-email-verify-secret",
		ForgotPasswordSecret: "test-forgot-password-secret",
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	tokenService := NewTokenService(testJWTConfig())
	userID := "2f9d46c8-0000-4000-8000-000000000001"

	kinds := []model.TokenKind{
		model.TokenAccess,
		model.TokenRefresh,
		model.TokenForgotPassword,
		model.TokenEmailVerify,
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			tokenString, err := tokenService.Issue(userID, kind)
			require.NoError(t, err)
			require.NotEmpty(t, tokenString)

			claims, err := tokenService.Verify(tokenString, kind)
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
			assert.Equal(t, kind, claims.TokenType)
		})
	}
}

func TestTokenService_WrongKindFails(t *testing.T) {
	tokenService := NewTokenService(testJWTConfig())

	// A refresh token must never verify against the access secret, and
	// likewise for every other kind pairing.
	refreshToken, err := tokenService.Issue("user-1", model.TokenRefresh)
	require.NoError(t, err)

	_, err = tokenService.Verify(refreshToken, model.TokenAccess)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	emailToken, err := tokenService.Issue("user-1", model.TokenEmailVerify)
	require.NoError(t, err)

	_, err = tokenService.Verify(emailToken, model.TokenForgotPassword)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenService_ExpiredTokenFails(t *testing.T) {
	tokenService := NewTokenService(testJWTConfig())

	tokenString, err := sign("user-1", model.TokenAccess, []byte("test-access-secret"), -time.Minute)
	require.NoError(t, err)

	_, err = tokenService.Verify(tokenString, model.TokenAccess)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenService_MalformedTokenFails(t *testing.T) {
	tokenService := NewTokenService(testJWTConfig())

	_, err := tokenService.Verify("not-a-token", model.TokenAccess)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	_, err = tokenService.Verify("", model.TokenRefresh)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenService_ForgedSecretFails(t *testing.T) {
	forged := NewTokenService(config.JWTConfig{AccessSecret: "attacker-secret"})
	tokenService := NewTokenService(testJWTConfig())

	tokenString, err := forged.Issue("user-1", model.TokenAccess)
	require.NoError(t, err)

	_, err = tokenService.Verify(tokenString, model.TokenAccess)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
