// Package model defines the data structures used throughout the application.
// Go favours plain structs and composition; none of these types carry behaviour
// beyond small, pure helpers.
package model

import "time"

// User is a record kept by the user store.
//
// ID and CreatedAt belong to the store: it assigns them on create and never
// lets a caller change them. FirstName and LastName are optional, so they are
// pointers; nil means "not set" and is different from an empty string.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy so the optional name pointers are never shared
// between the store and its callers.
func (u User) Clone() User {
	u.FirstName = cloneString(u.FirstName)
	u.LastName = cloneString(u.LastName)
	return u
}

// UserPatch is a sparse set of user fields. A nil field is left untouched.
//
// ID and CreatedAt exist so that any partial user decoded from JSON fits in a
// UserPatch. MergeUser ignores both.
type UserPatch struct {
	ID        *int64     `json:"id,omitempty"`
	Username  *string    `json:"username,omitempty"`
	Email     *string    `json:"email,omitempty"`
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// MergeUser applies patch over existing field by field and stamps UpdatedAt.
// The identifier and creation time always come from existing.
func MergeUser(existing User, patch UserPatch, now time.Time) User {
	merged := existing.Clone()

	if patch.Username != nil {
		merged.Username = *patch.Username
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.FirstName != nil {
		merged.FirstName = cloneString(patch.FirstName)
	}
	if patch.LastName != nil {
		merged.LastName = cloneString(patch.LastName)
	}

	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt
	merged.UpdatedAt = now
	return merged
}

// StringPtr is a convenience for filling optional fields in literals.
func StringPtr(s string) *string { return &s }

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
