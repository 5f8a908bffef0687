package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/devconnector/internal/domain/entity"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned by Create when the unique email index rejects the insert.
	ErrDuplicateEmail = errors.New("duplicate email")
)

// UserRepository defines the interface for user-related database operations.
// Create assigns ID and timestamps on success and never leaves a partial row behind.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
