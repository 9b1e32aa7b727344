// file: model/token.go

package model

import "time"

// RefreshToken is a persisted refresh-token record. A user may hold several
// at once, one per active session. The record stores the signed token string
// verbatim so revocation is a lookup by value; expiry is carried inside the
// token's own claims, not here.
type RefreshToken struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenPair is the result of a successful register, login or email
// verification.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
