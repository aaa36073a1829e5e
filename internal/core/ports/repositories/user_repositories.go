package repositories

import (
	"context"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for auth principals.
type UserRepositoryFacade interface {
	// FindUserByEmail returns the user or apperrors.ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByID returns the user or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}
