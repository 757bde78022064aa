package memory

import (
	"context"
	"sync"
	"time"

	"github.com/churn/api/internal/core/domain"
	"github.com/churn/api/internal/core/ports"
)

// UserRepository is a mutex-guarded in-memory credential store. Create is
// an atomic check-and-insert, so concurrent registrations of the same
// username cannot both succeed.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() ports.UserRepository {
	return &UserRepository{
		users: make(map[string]domain.User),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUserAlreadyExists
	}

	user.CreatedAt = time.Now()
	r.users[user.Username] = *user
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return nil, nil
	}
	return &user, nil
}
