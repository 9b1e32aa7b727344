// handler/fakes_test.go
package handler

import (
	"context"
	"database/sql"
	"go-auth-api/model"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// In-memory stand-ins for the persistence and cache contracts so guard and
// handler behavior can be exercised without a database.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) CreateUser(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) GetUserByID(id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) update(id string, fn func(*model.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	fn(user)
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) UpdateEmailVerifyToken(id, token string) error {
	return r.update(id, func(u *model.User) { u.EmailVerifyToken = token })
}

func (r *fakeUserRepo) MarkEmailVerified(id string) error {
	return r.update(id, func(u *model.User) {
		u.EmailVerifyToken = ""
		u.Verify = model.Verified
	})
}

func (r *fakeUserRepo) UpdateForgotPasswordToken(id, token string) error {
	return r.update(id, func(u *model.User) { u.ForgotPasswordToken = token })
}

func (r *fakeUserRepo) UpdatePassword(id, hashedPassword string) error {
	return r.update(id, func(u *model.User) {
		u.Password = hashedPassword
		u.ForgotPasswordToken = ""
	})
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*model.RefreshToken
	nextID int
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*model.RefreshToken{}}
}

func (r *fakeTokenRepo) Create(token *model.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	token.ID = r.nextID
	token.CreatedAt = time.Now()
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *fakeTokenRepo) GetByToken(tokenValue string) (*model.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[tokenValue]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *token
	return &copied, nil
}

func (r *fakeTokenRepo) DeleteByToken(tokenValue string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, tokenValue)
	return nil
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.store[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		c.store[key] = string(v)
	case string:
		c.store[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.store, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
