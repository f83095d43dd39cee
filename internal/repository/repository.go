// Package repository declares the storage contracts the service layer
// depends on. Implementations live in sub-packages (memory, sqlite).
package repository

import (
	"context"

	"github.com/sakif/go-examples/internal/model"
)

// UserRepository stores users.
//
// Implementations own identifier assignment and timestamps, and must enforce
// username uniqueness atomically with the write that would break it. Every
// method returns copies; the caller never holds a reference into the store.
type UserRepository interface {
	// Create assigns ID, CreatedAt and UpdatedAt on user and stores it.
	// Returns apperror.DuplicateUsername on a username collision.
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// Update replaces the stored user with the same ID. It never changes
	// ID or CreatedAt. Returns apperror.ErrNotFound or DuplicateUsername.
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
	// List returns all users ordered by ID ascending.
	List(ctx context.Context) ([]model.User, error)
}
