package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"go-auth-api/common"
	"go-auth-api/logger"
	"go-auth-api/model"
	"go-auth-api/repository"
	"sync"
	"time"

	"github.com/google/uuid"
)

const profileCacheTTL = 10 * time.Minute

func profileCacheKey(userID string) string {
	return "profile:" + userID
}

// UserService orchestrates the account lifecycle: registration, login,
// logout, email verification and password reset. All collaborators are
// injected at construction so tests can substitute fakes.
type UserService struct {
	userRepo  repository.IUserRepository
	tokenRepo repository.ITokenRepository
	tokens    *TokenService
	auth      *AuthService
	cache     ICacheClient
}

func NewUserService(
	userRepo repository.IUserRepository,
	tokenRepo repository.ITokenRepository,
	tokens *TokenService,
	auth *AuthService,
	cache ICacheClient,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
		auth:      auth,
		cache:     cache,
	}
}

// issueTokenPair signs an access and a refresh token concurrently and
// persists the refresh-token record. No ordering is assumed between the
// two signings.
func (s *UserService) issueTokenPair(userID string) (*model.TokenPair, error) {
	var accessToken, refreshToken string
	var accessErr, refreshErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		accessToken, accessErr = s.tokens.Issue(userID, model.TokenAccess)
	}()
	go func() {
		defer wg.Done()
		refreshToken, refreshErr = s.tokens.Issue(userID, model.TokenRefresh)
	}()
	wg.Wait()

	if accessErr != nil {
		return nil, accessErr
	}
	if refreshErr != nil {
		return nil, refreshErr
	}

	record := &model.RefreshToken{UserID: userID, Token: refreshToken}
	if err := s.tokenRepo.Create(record); err != nil {
		return nil, err
	}

	return &model.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Register creates a user record and returns a fresh token pair. The user
// id is allocated up front so the email-verification token minted here can
// already embed it before the record exists.
func (s *UserService) Register(req *model.RegisterRequest) (*model.TokenPair, error) {
	userID := uuid.NewString()

	emailVerifyToken, err := s.tokens.Issue(userID, model.TokenEmailVerify)
	if err != nil {
		return nil, err
	}

	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:               userID,
		Name:             req.Name,
		Email:            req.Email,
		DateOfBirth:      dateOfBirth,
		Password:         s.auth.HashPassword(req.Password),
		EmailVerifyToken: emailVerifyToken,
		Verify:           model.Unverified,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	logger.Log.WithField("user_id", userID).Info("User registered")
	return s.issueTokenPair(userID)
}

// Login issues a new token pair for an already-authenticated user. Prior
// refresh tokens stay valid; each active session holds its own.
func (s *UserService) Login(userID string) (*model.TokenPair, error) {
	return s.issueTokenPair(userID)
}

// Logout revokes a single session by deleting its refresh-token record.
// Idempotent: revoking an unknown token succeeds.
func (s *UserService) Logout(refreshToken string) error {
	return s.tokenRepo.DeleteByToken(refreshToken)
}

// VerifyEmail issues a fresh token pair and flips the verification status
// concurrently, with no enforced order between the two. A failed status
// flip does not roll back the issued tokens; the pair is returned anyway
// and the failure is logged. The inconsistency window is part of the
// design.
func (s *UserService) VerifyEmail(userID string) (*model.TokenPair, error) {
	var pair *model.TokenPair
	var issueErr, updateErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		pair, issueErr = s.issueTokenPair(userID)
	}()
	go func() {
		defer wg.Done()
		updateErr = s.userRepo.MarkEmailVerified(userID)
	}()
	wg.Wait()

	if issueErr != nil {
		return nil, issueErr
	}
	if updateErr != nil {
		logger.Log.WithError(updateErr).WithField("user_id", userID).
			Warn("Tokens issued but verification status update failed")
	}

	s.cache.Del(context.Background(), profileCacheKey(userID))
	return pair, nil
}

// ResendVerifyEmail mints a new email-verification token and overwrites the
// stored one, invalidating any previously sent link. Concurrent resends are
// last-write-wins. The already-verified check lives in the calling layer.
func (s *UserService) ResendVerifyEmail(userID string) (string, error) {
	token, err := s.tokens.Issue(userID, model.TokenEmailVerify)
	if err != nil {
		return "", err
	}
	if err := s.userRepo.UpdateEmailVerifyToken(userID, token); err != nil {
		return "", err
	}
	return token, nil
}

// ForgotPassword mints a password-reset token and stores it on the user
// record, invalidating any previously issued one.
func (s *UserService) ForgotPassword(userID string) (string, error) {
	token, err := s.tokens.Issue(userID, model.TokenForgotPassword)
	if err != nil {
		return "", err
	}
	if err := s.userRepo.UpdateForgotPasswordToken(userID, token); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword stores the digest of the new password and clears the
// forgot-password token, consuming it.
func (s *UserService) ResetPassword(userID, newPassword string) error {
	if err := s.userRepo.UpdatePassword(userID, s.auth.HashPassword(newPassword)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrNotFound
		}
		return err
	}
	s.cache.Del(context.Background(), profileCacheKey(userID))
	return nil
}

// GetProfile returns a user's public projection, serving repeated reads
// from the cache.
func (s *UserService) GetProfile(userID string) (*model.Profile, error) {
	cacheKey := profileCacheKey(userID)
	ctx := context.Background()

	cached, err := s.cache.Get(ctx, cacheKey).Result()
	if err == nil {
		profile := &model.Profile{}
		if err := json.Unmarshal([]byte(cached), profile); err == nil {
			return profile, nil
		}
	}

	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}
	profile := user.ToProfile()

	if data, err := json.Marshal(profile); err == nil {
		s.cache.Set(ctx, cacheKey, data, profileCacheTTL)
	}

	return profile, nil
}

// FindByEmail looks up a user by its natural key, mapping a missing row to
// common.ErrNotFound.
func (s *UserService) FindByEmail(email string) (*model.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// FindByID looks up a user by id, mapping a missing row to
// common.ErrNotFound.
func (s *UserService) FindByID(userID string) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// CheckEmailExists reports whether an email is already registered.
func (s *UserService) CheckEmailExists(email string) (bool, error) {
	_, err := s.FindByEmail(email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CheckPasswordCorrect re-hashes the supplied password and compares it to
// the stored digest.
func (s *UserService) CheckPasswordCorrect(email, password string) (bool, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.auth.CheckPasswordHash(password, user.Password), nil
}
