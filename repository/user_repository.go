package repository

import (
	"database/sql"
	"go-auth-api/logger"
	"go-auth-api/model"
)

// IUserRepository defines the contract for user record persistence.
// All operations are atomic at the single-row level; no multi-row
// transactions are assumed.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id string) (*model.User, error)
	UpdateEmailVerifyToken(id, token string) error
	MarkEmailVerified(id string) error
	UpdateForgotPasswordToken(id, token string) error
	UpdatePassword(id, hashedPassword string) error
}

// UserRepository implements IUserRepository on Postgres.
type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, name, email, date_of_birth, password, email_verify_token, forgot_password_token, verify, created_at, updated_at`

func scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.DateOfBirth, &user.Password,
		&user.EmailVerifyToken, &user.ForgotPasswordToken, &user.Verify,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new user record. The caller allocates the id up
// front so that tokens minted during registration can already embed it.
func (r *UserRepository) CreateUser(user *model.User) error {
	log := logger.Log.WithField("user_id", user.ID)
	log.Info("Executing query to create a new user")

	query := `INSERT INTO users (id, name, email, date_of_birth, password, email_verify_token, verify)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at, updated_at`
	err := r.DB.QueryRow(query,
		user.ID, user.Name, user.Email, user.DateOfBirth, user.Password,
		user.EmailVerifyToken, user.Verify,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create user query")
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.DB.QueryRow(query, email))
}

func (r *UserRepository) GetUserByID(id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.DB.QueryRow(query, id))
}

// UpdateEmailVerifyToken overwrites the pending email-verification token.
// Concurrent overwrites are last-write-wins.
func (r *UserRepository) UpdateEmailVerifyToken(id, token string) error {
	query := `UPDATE users SET email_verify_token = $2, updated_at = now() WHERE id = $1`
	return r.exec(query, "update email verify token", id, token)
}

// MarkEmailVerified clears the pending token to the empty sentinel and
// advances the verification status in one statement.
func (r *UserRepository) MarkEmailVerified(id string) error {
	query := `UPDATE users SET email_verify_token = '', verify = $2, updated_at = now() WHERE id = $1`
	return r.exec(query, "mark email verified", id, model.Verified)
}

func (r *UserRepository) UpdateForgotPasswordToken(id, token string) error {
	query := `UPDATE users SET forgot_password_token = $2, updated_at = now() WHERE id = $1`
	return r.exec(query, "update forgot password token", id, token)
}

// UpdatePassword stores the new digest and clears the forgot-password
// token, consuming it.
func (r *UserRepository) UpdatePassword(id, hashedPassword string) error {
	query := `UPDATE users SET password = $2, forgot_password_token = '', updated_at = now() WHERE id = $1`
	return r.exec(query, "update password", id, hashedPassword)
}

func (r *UserRepository) exec(query, op string, args ...interface{}) error {
	log := logger.Log.WithField("query", op)
	log.Info("Executing user update query")

	result, err := r.DB.Exec(query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to execute user update query")
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
