package mockapi

import (
	"strings"
	"sync"

	"github.com/sakif/go-examples/internal/model"
)

// ContactInput is the body of a create request.
type ContactInput struct {
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  model.UserRole `json:"role"`
}

// ContactPatch is the body of an update request. Nil fields are unchanged.
type ContactPatch struct {
	Name  *string         `json:"name,omitempty"`
	Email *string         `json:"email,omitempty"`
	Role  *model.UserRole `json:"role,omitempty"`
}

// UserAPI serves the contact endpoints.
type UserAPI struct {
	mu       sync.RWMutex
	contacts []model.Contact
}

// NewUserAPI returns a UserAPI seeded with three contacts.
func NewUserAPI() *UserAPI {
	return &UserAPI{
		contacts: []model.Contact{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Role: model.RoleAdmin},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: model.RoleUser},
			{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: model.RoleUser},
		},
	}
}

func (a *UserAPI) All() model.Response[[]model.Contact] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]model.Contact, len(a.contacts))
	copy(out, a.contacts)
	return model.OK(out, "Users retrieved successfully")
}

func (a *UserAPI) Get(id int) model.Response[*model.Contact] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	i := a.indexOf(id)
	if i < 0 {
		return notFound[*model.Contact]("User not found")
	}
	c := a.contacts[i]
	return model.OK(&c, "User found")
}

// Create adds a contact. Name and email are required; role defaults to user.
func (a *UserAPI) Create(in ContactInput) model.Response[*model.Contact] {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return badRequest[*model.Contact]("Name and email are required")
	}
	if !validEmail(in.Email) {
		return badRequest[*model.Contact]("Email is not a valid address")
	}
	if in.Role == "" {
		in.Role = model.RoleUser
	}
	if !in.Role.Valid() {
		return badRequest[*model.Contact]("Unknown role")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	c := model.Contact{
		ID:    a.nextID(),
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Role:  in.Role,
	}
	a.contacts = append(a.contacts, c)
	return created(&c, "User created successfully")
}

func (a *UserAPI) Update(id int, patch ContactPatch) model.Response[*model.Contact] {
	if patch.Email != nil && !validEmail(*patch.Email) {
		return badRequest[*model.Contact]("Email is not a valid address")
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return badRequest[*model.Contact]("Unknown role")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.indexOf(id)
	if i < 0 {
		return notFound[*model.Contact]("User not found")
	}
	c := &a.contacts[i]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Role != nil {
		c.Role = *patch.Role
	}
	out := *c
	return model.OK(&out, "User updated successfully")
}

func (a *UserAPI) Delete(id int) model.Response[any] {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.indexOf(id)
	if i < 0 {
		return notFound[any]("User not found")
	}
	a.contacts = append(a.contacts[:i], a.contacts[i+1:]...)
	return model.OK[any](nil, "User deleted successfully")
}

func (a *UserAPI) indexOf(id int) int {
	for i, c := range a.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// nextID is one past the largest id in use, so a delete followed by a
// create never hands out a duplicate.
func (a *UserAPI) nextID() int {
	maxID := 0
	for _, c := range a.contacts {
		maxID = max(maxID, c.ID)
	}
	return maxID + 1
}
