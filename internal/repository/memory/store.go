// Package memory implements repository.UserRepository on a plain Go map.
//
// The Store owns both the map and the identifier counter, so there is no
// package-level state: two stores never share IDs or usernames.
package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/sakif/go-examples/internal/apperror"
	"github.com/sakif/go-examples/internal/model"
	"github.com/sakif/go-examples/internal/repository"
)

var _ repository.UserRepository = (*Store)(nil)

// Store is an in-memory user store. A single mutex guards every operation,
// so a Store is safe for concurrent use and each call is all-or-nothing.
type Store struct {
	mu     sync.Mutex
	users  map[int64]model.User
	byName map[string]int64 // username -> id
	lastID int64            // only ever grows; deleted IDs are not reused
	now    func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces time.Now, mainly so tests can control timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		users:  make(map[int64]model.User),
		byName: make(map[string]int64),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byName[user.Username]; taken {
		return apperror.DuplicateUsername(user.Username)
	}

	s.lastID++
	now := s.now()
	user.ID = s.lastID
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = user.Clone()
	s.byName[user.Username] = user.ID
	return nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, notFound(id)
	}
	c := u.Clone()
	return &c, nil
}

func (s *Store) Update(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok {
		return notFound(user.ID)
	}
	if owner, taken := s.byName[user.Username]; taken && owner != user.ID {
		return apperror.DuplicateUsername(user.Username)
	}

	user.CreatedAt = existing.CreatedAt
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = s.now()
	}

	delete(s.byName, existing.Username)
	s.byName[user.Username] = user.ID
	s.users[user.ID] = user.Clone()
	return nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return notFound(id)
	}
	delete(s.users, id)
	delete(s.byName, u.Username)
	return nil
}

func (s *Store) List(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]model.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.users[id].Clone())
	}
	return out, nil
}

// Len reports how many users are stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func notFound(id int64) error {
	return apperror.NotFound("user", strconv.FormatInt(id, 10))
}
