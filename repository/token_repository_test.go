// file: repository/token_repository_test.go

package repository

import (
	"database/sql"
	"go-auth-api/model"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockTokenRepo(t *testing.T) (*TokenRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTokenRepository(db), mock
}

func TestTokenRepository_Create(t *testing.T) {
	repo, mock := newMockTokenRepo(t)
	now := time.Now()

	token := &model.RefreshToken{UserID: "user-1", Token: "signed-refresh-token"}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO refresh_tokens (user_id, token) VALUES ($1, $2) RETURNING id, created_at`)).
		WithArgs("user-1", "signed-refresh-token").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	err := repo.Create(token)

	require.NoError(t, err)
	assert.Equal(t, 7, token.ID)
	assert.Equal(t, now, token.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_GetByToken(t *testing.T) {
	repo, mock := newMockTokenRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, token, created_at FROM refresh_tokens WHERE token = $1`)).
		WithArgs("signed-refresh-token").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "created_at"}).
			AddRow(7, "user-1", "signed-refresh-token", now))

	token, err := repo.GetByToken("signed-refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "user-1", token.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_GetByToken_Revoked(t *testing.T) {
	repo, mock := newMockTokenRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM refresh_tokens WHERE token = $1`)).
		WithArgs("revoked-token").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByToken("revoked-token")

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTokenRepository_DeleteByToken_Idempotent(t *testing.T) {
	repo, mock := newMockTokenRepo(t)

	// Deleting a token that is already gone affects zero rows and is
	// still a success, so logout can be retried safely.
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM refresh_tokens WHERE token = $1`)).
		WithArgs("already-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByToken("already-gone")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
