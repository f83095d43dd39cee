// Package service contains the business logic layer.
//
//	Caller (CLI, tests) → UserService (rules) → repository.UserRepository (storage)
//
// UserService knows the validation rules (email shape, unique usernames) and
// how a partial update is merged. It does not know whether users live in a
// Go map or in SQLite; it only sees the repository interface.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/sakif/go-examples/internal/apperror"
	"github.com/sakif/go-examples/internal/model"
	"github.com/sakif/go-examples/internal/repository"
)

// emailPattern accepts anything shaped like local@domain.tld: no whitespace,
// exactly one @, and at least one dot after it.
//
// RE2's \s is ASCII only, so "whitespace" is spelled out: \s, vertical tab,
// the byte order mark and every Unicode space or separator (\p{Z}).
var emailPattern = regexp.MustCompile(`^[^\s\x{000B}\x{FEFF}\p{Z}@]+@[^\s\x{000B}\x{FEFF}\p{Z}@]+\.[^\s\x{000B}\x{FEFF}\p{Z}@]+$`)

// ValidEmail reports whether email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// UserService handles business logic for user records.
type UserService struct {
	repo   repository.UserRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewUserService creates a UserService over the given repository.
func NewUserService(repo repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates and stores a new user.
//
// The only checks are email shape and then username uniqueness (which the
// repository checks atomically with the insert). Any string, even an empty
// one, is an acceptable username. Nothing is stored on failure.
func (s *UserService) Create(ctx context.Context, username, email string, firstName, lastName *string) (*model.User, error) {
	if !ValidEmail(email) {
		return nil, apperror.InvalidEmail(email)
	}

	user := &model.User{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, s.storageError("create", err, slog.String("username", username))
	}

	s.logger.Info("user created",
		slog.Int64("id", user.ID),
		slog.String("username", user.Username),
	)

	out := user.Clone()
	return &out, nil
}

// GetByID returns the user with the given id, or apperror.ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storageError("get", err, slog.Int64("id", id))
	}
	return user, nil
}

// Update merges patch into the stored user.
//
// ID and CreatedAt in the patch are ignored. A new email is held to the same
// shape rule as on create, and a new username must still be unique.
func (s *UserService) Update(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storageError("update", err, slog.Int64("id", id))
	}

	if patch.Email != nil && !ValidEmail(*patch.Email) {
		return nil, apperror.InvalidEmail(*patch.Email)
	}

	merged := model.MergeUser(*existing, patch, s.now())
	if err := s.repo.Update(ctx, &merged); err != nil {
		return nil, s.storageError("update", err, slog.Int64("id", id))
	}

	s.logger.Info("user updated",
		slog.Int64("id", merged.ID),
		slog.String("username", merged.Username),
	)
	return &merged, nil
}

// Delete removes the user with the given id. The username is free for reuse
// afterwards; the id is not.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.storageError("delete", err, slog.Int64("id", id))
	}
	s.logger.Info("user deleted", slog.Int64("id", id))
	return nil
}

// List returns every stored user in id order.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.storageError("list", err)
	}
	return users, nil
}

// storageError passes domain errors through untouched and wraps anything
// else. Only the latter is logged: a missing user or a taken username is a
// normal outcome, not a failure.
func (s *UserService) storageError(op string, err error, attrs ...slog.Attr) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("op", op), slog.String("error", err.Error()))
	for _, a := range attrs {
		args = append(args, a)
	}
	s.logger.Error("user storage failed", args...)
	return fmt.Errorf("%s user: %w", op, err)
}
