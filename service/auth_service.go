package service

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const digestIterations = 4096

// AuthService turns plaintext passwords into storable digests. The digest
// is keyed with a process-wide secret and is deterministic: the same
// plaintext and secret always produce the same digest, so login re-hashes
// the supplied password and compares instead of storing anything
// recoverable.
type AuthService struct {
	secret []byte
}

func NewAuthService(passwordSecret string) *AuthService {
	return &AuthService{secret: []byte(passwordSecret)}
}

func (s *AuthService) HashPassword(password string) string {
	digest := pbkdf2.Key([]byte(password), s.secret, digestIterations, 32, sha256.New)
	return hex.EncodeToString(digest)
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	return s.HashPassword(password) == hash
}
