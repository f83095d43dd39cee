// Package async simulates slow remote calls to show sequential versus
// parallel waiting.
//
// Go has no promises: a "pending" call is just a goroutine, and waiting for
// several of them is an errgroup. Every call takes a context so a caller can
// give up early; a cancelled context ends the artificial delay immediately.
package async

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sakif/go-examples/internal/model"
)

// DefaultDelay is how long one simulated fetch takes.
const DefaultDelay = time.Second

// RemoteUser is what the simulated remote service returns.
type RemoteUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Fetcher performs simulated fetches. The zero value is not usable; build
// one with NewFetcher.
type Fetcher struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewFetcher(delay time.Duration, logger *slog.Logger) *Fetcher {
	if delay < 0 {
		delay = 0
	}
	return &Fetcher{delay: delay, logger: logger}
}

// Delay blocks for d or until ctx is done, whichever comes first.
func Delay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FetchUser pretends to load one user from a remote service.
func (f *Fetcher) FetchUser(ctx context.Context, id int) (RemoteUser, error) {
	f.logger.Debug("fetching user", slog.Int("id", id))

	if err := Delay(ctx, f.delay); err != nil {
		return RemoteUser{}, fmt.Errorf("fetching user %d: %w", id, err)
	}

	return RemoteUser{
		ID:    id,
		Name:  fmt.Sprintf("User %d", id),
		Email: fmt.Sprintf("user%d@example.com", id),
	}, nil
}

// FetchMany fetches all ids concurrently. The result keeps the order of ids.
// The first failure cancels the remaining fetches.
func (f *Fetcher) FetchMany(ctx context.Context, ids []int) ([]RemoteUser, error) {
	users := make([]RemoteUser, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			u, err := f.FetchUser(ctx, id)
			if err != nil {
				return err
			}
			users[i] = u // each goroutine owns its own index
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return users, nil
}

// Sequential fetches ids one after another. Total time is roughly
// len(ids) * delay, against roughly one delay for FetchMany.
func (f *Fetcher) Sequential(ctx context.Context, ids []int) ([]RemoteUser, error) {
	users := make([]RemoteUser, 0, len(ids))
	for _, id := range ids {
		u, err := f.FetchUser(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// FetchSafe never returns an error: failures are folded into the envelope.
func (f *Fetcher) FetchSafe(ctx context.Context, id int) model.Response[RemoteUser] {
	u, err := f.FetchUser(ctx, id)
	if err != nil {
		return model.Fail[RemoteUser](err.Error(), 503)
	}
	return model.OK(u, "")
}
