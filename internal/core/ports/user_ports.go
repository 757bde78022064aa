package ports

import (
	"context"

	"github.com/churn/api/internal/core/domain"
)

// UserRepository is the credential store. Create must be atomic
// check-and-insert: a concurrent duplicate registration must observe
// domain.ErrUserAlreadyExists. GetByUsername returns (nil, nil) on a miss.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
