// file: repository/token_repository.go

package repository

import (
	"database/sql"
	"go-auth-api/logger"
	"go-auth-api/model"
)

// ITokenRepository defines the contract for refresh-token records.
type ITokenRepository interface {
	Create(token *model.RefreshToken) error
	GetByToken(token string) (*model.RefreshToken, error)
	DeleteByToken(token string) error
}

// TokenRepository implements ITokenRepository.
type TokenRepository struct {
	DB *sql.DB
}

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

// Create inserts a new refresh-token record. Several records may exist per
// user, one for each active session.
func (r *TokenRepository) Create(token *model.RefreshToken) error {
	log := logger.Log.WithField("user_id", token.UserID)
	log.Info("Executing query to create a new refresh token")

	query := `INSERT INTO refresh_tokens (user_id, token) VALUES ($1, $2) RETURNING id, created_at`
	err := r.DB.QueryRow(query, token.UserID, token.Token).Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create refresh token query")
		return err
	}
	return nil
}

// GetByToken retrieves a refresh-token record by its token value.
// Returns sql.ErrNoRows when the token has been revoked or never existed.
func (r *TokenRepository) GetByToken(tokenValue string) (*model.RefreshToken, error) {
	token := &model.RefreshToken{}
	query := `SELECT id, user_id, token, created_at FROM refresh_tokens WHERE token = $1`
	err := r.DB.QueryRow(query, tokenValue).Scan(&token.ID, &token.UserID, &token.Token, &token.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).Error("Failed to execute get refresh token query")
		}
		return nil, err
	}
	return token, nil
}

// DeleteByToken removes the record for a single session. Deleting a token
// that does not exist is not an error, so logout stays idempotent.
func (r *TokenRepository) DeleteByToken(tokenValue string) error {
	query := `DELETE FROM refresh_tokens WHERE token = $1`
	_, err := r.DB.Exec(query, tokenValue)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete refresh token query")
		return err
	}
	return nil
}
