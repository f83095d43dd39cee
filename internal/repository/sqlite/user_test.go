package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/go-examples/internal/apperror"
	"github.com/sakif/go-examples/internal/model"
)

// newTestDB opens a fresh in-memory database that is closed when the test ends.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(MemoryDSN)
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: model.StringPtr("Test"),
	}
	if err := db.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// =========================================================================
// CREATE TESTS
// =========================================================================

func TestUserCreate(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "alice")

	if user.ID != 1 {
		t.Errorf("ID = %d, want 1", user.ID)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Create() did not set timestamps")
	}
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "alice")

	err := db.Create(context.Background(), &model.User{Username: "alice", Email: "x@example.com"})

	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("Create() error = %v, want ErrConflict", err)
	}
}

// =========================================================================
// GET BY ID TESTS
// =========================================================================

func TestUserGetByID(t *testing.T) {
	db := newTestDB(t)
	created := createTestUser(t, db, "bob")

	found, err := db.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "bob", found.Username)
	assert.Equal(t, "bob@example.com", found.Email)
	require.NotNil(t, found.FirstName)
	assert.Equal(t, "Test", *found.FirstName)
	assert.Nil(t, found.LastName)
	assert.True(t, created.CreatedAt.Equal(found.CreatedAt),
		"CreatedAt = %v, want %v", found.CreatedAt, created.CreatedAt)
}

func TestUserGetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetByID(context.Background(), 404)

	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

// =========================================================================
// UPDATE TESTS
// =========================================================================

func TestUserUpdate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "carol")
	created := user.CreatedAt

	user.Email = "new@example.com"
	user.LastName = model.StringPtr("Danvers")
	user.CreatedAt = created.AddDate(-1, 0, 0) // must be ignored
	require.NoError(t, db.Update(ctx, user))

	found, err := db.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", found.Email)
	require.NotNil(t, found.LastName)
	assert.Equal(t, "Danvers", *found.LastName)
	assert.True(t, created.Equal(found.CreatedAt))
	assert.True(t, created.Equal(user.CreatedAt), "caller's CreatedAt should be restored")
}

func TestUserUpdate_UsernameTaken(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "dave")
	eve := createTestUser(t, db, "eve")

	eve.Username = "dave"
	err := db.Update(context.Background(), eve)

	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestUserUpdate_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.Update(context.Background(), &model.User{ID: 77, Username: "ghost", Email: "g@example.com"})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

// =========================================================================
// DELETE / LIST TESTS
// =========================================================================

func TestUserDelete_IDNotReused(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := createTestUser(t, db, "one")
	createTestUser(t, db, "two")
	require.NoError(t, db.Delete(ctx, first.ID))

	// Same username is free again, but the id keeps climbing.
	again := createTestUser(t, db, "one")
	assert.Equal(t, int64(3), again.ID)

	assert.ErrorIs(t, db.Delete(ctx, first.ID), apperror.ErrNotFound)
}

func TestUserList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	empty, err := db.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	createTestUser(t, db, "a")
	createTestUser(t, db, "b")
	createTestUser(t, db, "c")
	require.NoError(t, db.Delete(ctx, 2))

	users, err := db.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].Username)
	assert.Equal(t, "c", users[1].Username)
}
