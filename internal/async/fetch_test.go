package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(delay time.Duration) *Fetcher {
	return NewFetcher(delay, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetchUser(t *testing.T) {
	f := newTestFetcher(0)

	u, err := f.FetchUser(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, RemoteUser{ID: 7, Name: "User 7", Email: "user7@example.com"}, u)
}

func TestFetchMany_KeepsOrder(t *testing.T) {
	f := newTestFetcher(5 * time.Millisecond)

	users, err := f.FetchMany(context.Background(), []int{3, 1, 2})
	require.NoError(t, err)

	require.Len(t, users, 3)
	assert.Equal(t, 3, users[0].ID)
	assert.Equal(t, 1, users[1].ID)
	assert.Equal(t, 2, users[2].ID)
}

func TestFetchMany_RunsInParallel(t *testing.T) {
	const delay = 50 * time.Millisecond
	f := newTestFetcher(delay)

	start := time.Now()
	_, err := f.FetchMany(context.Background(), []int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	// Five sequential fetches would take 250ms.
	assert.Less(t, time.Since(start), 4*delay)
}

func TestSequential_TakesEachDelay(t *testing.T) {
	const delay = 10 * time.Millisecond
	f := newTestFetcher(delay)

	start := time.Now()
	users, err := f.Sequential(context.Background(), []int{1, 2, 3})
	require.NoError(t, err)

	assert.Len(t, users, 3)
	assert.GreaterOrEqual(t, time.Since(start), 3*delay)
}

func TestCancellation(t *testing.T) {
	f := newTestFetcher(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.FetchMany(ctx, []int{1, 2})

	assert.True(t, errors.Is(err, context.DeadlineExceeded), "err = %v", err)
}

func TestFetchSafe(t *testing.T) {
	f := newTestFetcher(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := f.FetchSafe(ctx, 1)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "context canceled")

	ok := newTestFetcher(0).FetchSafe(context.Background(), 2)
	assert.True(t, ok.Success)
	assert.Equal(t, "User 2", ok.Data.Name)
}

func TestNegativeDelayIsClamped(t *testing.T) {
	f := newTestFetcher(-time.Second)
	_, err := f.FetchUser(context.Background(), 1)
	assert.NoError(t, err)
}
