package handler

import (
	"context"
	"go-auth-api/common"
	"go-auth-api/model"
	"go-auth-api/repository"
	"go-auth-api/service"
	"net/http"
	"strings"
	"sync"
)

type contextKey string

const (
	// UserIDKey carries the verified subject id of the bearer token.
	UserIDKey contextKey = "userID"
	// TokenKindKey carries the kind of the verified bearer token.
	TokenKindKey contextKey = "tokenKind"
)

// AuthMiddleware is the access guard: it extracts bearer tokens from
// inbound requests, verifies them against the secret of the expected kind
// and attaches the verified identity to the request context. For refresh
// and reset flows it additionally checks the presented token against
// persisted state, so revocation and single-use semantics hold even for
// tokens whose signature is still valid.
type AuthMiddleware struct {
	tokens    *service.TokenService
	tokenRepo repository.ITokenRepository
	users     *service.UserService
}

func NewAuthMiddleware(tokens *service.TokenService, tokenRepo repository.ITokenRepository, users *service.UserService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, tokenRepo: tokenRepo, users: users}
}

// RequireAccessToken guards a route with the Authorization header. The
// header is split on whitespace and the second segment is the candidate
// token.
func (m *AuthMiddleware) RequireAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			appErr := common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
			appErr.Send(w)
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
			appErr := common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
			appErr.Send(w)
			return
		}

		claims, err := m.tokens.Verify(headerParts[1], model.TokenAccess)
		if err != nil {
			appErr := common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
			appErr.Send(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, TokenKindKey, claims.TokenType)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VerifyRefreshToken checks a refresh token's signature and its existence
// in the refresh-token store. Both checks run concurrently; a token whose
// record was deleted by logout is rejected even though its signature still
// verifies.
func (m *AuthMiddleware) VerifyRefreshToken(tokenString string) (*model.AppClaims, *common.AppError) {
	var claims *model.AppClaims
	var verifyErr, lookupErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		claims, verifyErr = m.tokens.Verify(tokenString, model.TokenRefresh)
	}()
	go func() {
		defer wg.Done()
		_, lookupErr = m.tokenRepo.GetByToken(tokenString)
	}()
	wg.Wait()

	if verifyErr != nil {
		return nil, common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", verifyErr)
	}
	if lookupErr != nil {
		return nil, common.NewAppError(http.StatusUnauthorized, "Refresh token has been revoked", common.ErrUnauthorized)
	}
	return claims, nil
}

// VerifyEmailToken checks an email-verification token's signature. The
// stored-value comparison happens in the handler, which also owns the
// already-verified success path.
func (m *AuthMiddleware) VerifyEmailToken(tokenString string) (*model.AppClaims, *common.AppError) {
	claims, err := m.tokens.Verify(tokenString, model.TokenEmailVerify)
	if err != nil {
		return nil, common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
	}
	return claims, nil
}

// VerifyForgotPasswordToken checks a reset token's signature and compares
// it to the token currently stored on the user record. Only the most
// recently issued reset token is usable; a consumed or superseded one
// fails even with a valid signature.
func (m *AuthMiddleware) VerifyForgotPasswordToken(tokenString string) (*model.AppClaims, *common.AppError) {
	claims, err := m.tokens.Verify(tokenString, model.TokenForgotPassword)
	if err != nil {
		return nil, common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
	}

	user, err := m.users.FindByID(claims.UserID)
	if err != nil {
		return nil, common.NewAppError(http.StatusNotFound, "User not found", err)
	}
	if user.ForgotPasswordToken != tokenString {
		return nil, common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", common.ErrInvalidToken)
	}
	return claims, nil
}
