package model

import "time"

// VerifyStatus tracks email verification on a user record. It only ever
// advances Unverified -> Verified; Banned is a terminal override applied
// by an external admin action, never by this service.
type VerifyStatus int

const (
	Unverified VerifyStatus = iota
	Verified
	Banned
)

// User is a persisted user record. EmailVerifyToken and ForgotPasswordToken
// use the empty string as the "no token pending" sentinel; downstream
// equality checks rely on exact-empty-string semantics, so these fields are
// plain strings rather than nullable types.
type User struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Email               string       `json:"email"`
	DateOfBirth         time.Time    `json:"date_of_birth"`
	Password            string       `json:"-"`
	EmailVerifyToken    string       `json:"-"`
	ForgotPasswordToken string       `json:"-"`
	Verify              VerifyStatus `json:"verify"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// Profile is the public projection of a User: no password digest and no
// pending token values.
type Profile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	DateOfBirth time.Time    `json:"date_of_birth"`
	Verify      VerifyStatus `json:"verify"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ToProfile projects the record to its public shape.
func (u *User) ToProfile() *Profile {
	return &Profile{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		DateOfBirth: u.DateOfBirth,
		Verify:      u.Verify,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
