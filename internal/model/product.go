package model

// Product is an item in the mock product catalogue.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	InStock     bool     `json:"inStock"`
	Stock       int      `json:"stock"`
	Tags        []string `json:"tags,omitempty"`
}

// Contact is a user of the mock REST API. It is a separate, simpler shape
// from User: the mock API has no uniqueness rules and no timestamps.
type Contact struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
