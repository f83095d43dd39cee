package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeUser_KeepsIdentity(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)
	existing := User{
		ID:        3,
		Username:  "alice",
		Email:     "alice@example.com",
		CreatedAt: created,
		UpdatedAt: created,
	}

	otherID := int64(99)
	otherTime := created.Add(-24 * time.Hour)
	merged := MergeUser(existing, UserPatch{
		ID:        &otherID,
		CreatedAt: &otherTime,
		Email:     StringPtr("new@example.com"),
	}, now)

	assert.Equal(t, int64(3), merged.ID)
	assert.Equal(t, created, merged.CreatedAt)
	assert.Equal(t, now, merged.UpdatedAt)
	assert.Equal(t, "new@example.com", merged.Email)
	assert.Equal(t, "alice", merged.Username)
}

func TestMergeUser_OptionalNames(t *testing.T) {
	existing := User{ID: 1, Username: "bob", FirstName: StringPtr("Bob")}

	merged := MergeUser(existing, UserPatch{LastName: StringPtr("Builder")}, time.Now())

	require.NotNil(t, merged.FirstName)
	require.NotNil(t, merged.LastName)
	assert.Equal(t, "Bob", *merged.FirstName)
	assert.Equal(t, "Builder", *merged.LastName)

	// The merge must not share pointers with its inputs.
	*merged.FirstName = "changed"
	assert.Equal(t, "Bob", *existing.FirstName)
}

func TestClone_DetachesPointers(t *testing.T) {
	u := User{FirstName: StringPtr("Ann")}
	c := u.Clone()
	*c.FirstName = "Zoe"
	assert.Equal(t, "Ann", *u.FirstName)
	assert.Nil(t, c.LastName)
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		size      int
		wantPages int
	}{
		{"exact", 20, 10, 2},
		{"remainder", 21, 10, 3},
		{"empty", 0, 10, 0},
		{"zero page size", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(1, tt.size, tt.total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, RoleModerator.Valid())
	assert.False(t, UserRole("root").Valid())
	assert.True(t, OrderShipped.Valid())
	assert.False(t, OrderStatus("lost").Valid())
}
