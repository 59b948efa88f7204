package repo

import (
	"context"
	"errors"
	"sync"
	"time"

	dom "github.com/moamen79/qurandle-backend/internal/domain"
)

// Storage-level sentinels, mapped to service errors by callers.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	Create(ctx context.Context, username, passwordHash string) (dom.User, error)
}

// MemoryUserRepo implements UserRepo with an in-process map. All state is
// lost on restart; that is the deployment model, not an accident. A durable
// implementation only has to satisfy the same interface.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]dom.User
}

// NewMemoryUserRepo returns an empty MemoryUserRepo.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]dom.User)}
}

// GetByUsername returns the user by exact, case-sensitive username.
func (r *MemoryUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[username]
	if !ok {
		return dom.User{}, ErrNotFound
	}
	return u, nil
}

// Create inserts a new user. Check-and-insert happens under one lock, so of
// two concurrent registrations for the same username exactly one wins and
// the other gets ErrDuplicate.
func (r *MemoryUserRepo) Create(_ context.Context, username, passwordHash string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; ok {
		return dom.User{}, ErrDuplicate
	}
	u := dom.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.users[username] = u
	return u, nil
}
