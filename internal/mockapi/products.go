package mockapi

import (
	"strings"
	"sync"

	"github.com/rs/xid"

	"github.com/sakif/go-examples/internal/model"
)

// ProductFilter narrows All. Zero values mean "no constraint".
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// ProductInput is the body of a create request.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Tags        []string `json:"tags"`
}

// ProductAPI serves the product endpoints.
type ProductAPI struct {
	mu       sync.RWMutex
	products []model.Product
}

// NewProductAPI returns a ProductAPI seeded with four electronics products.
func NewProductAPI() *ProductAPI {
	seed := []struct {
		name  string
		price float64
		stock int
	}{
		{"Laptop", 999.99, 15},
		{"Mouse", 29.99, 50},
		{"Keyboard", 79.99, 30},
		{"Monitor", 299.99, 20},
	}

	a := &ProductAPI{}
	for _, s := range seed {
		a.products = append(a.products, model.Product{
			ID:       xid.New().String(),
			Name:     s.name,
			Price:    s.price,
			Category: "Electronics",
			Stock:    s.stock,
			InStock:  s.stock > 0,
		})
	}
	return a
}

// All lists products. Category matches case-insensitively; price bounds are
// inclusive.
func (a *ProductAPI) All(f ProductFilter) model.Response[[]model.Product] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]model.Product, 0, len(a.products))
	for _, p := range a.products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	return model.OK(out, "Products retrieved successfully")
}

func (a *ProductAPI) Get(id string) model.Response[*model.Product] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	i := a.indexOf(id)
	if i < 0 {
		return notFound[*model.Product]("Product not found")
	}
	p := cloneProduct(a.products[i])
	return model.OK(&p, "Product found")
}

// Create adds a product. Name and a positive price are required; category
// defaults to "Uncategorized".
func (a *ProductAPI) Create(in ProductInput) model.Response[*model.Product] {
	if strings.TrimSpace(in.Name) == "" || in.Price <= 0 {
		return badRequest[*model.Product]("Name and price are required")
	}
	if in.Stock < 0 {
		return badRequest[*model.Product]("Stock cannot be negative")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "Uncategorized"
	}

	p := model.Product{
		ID:          xid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    category,
		Stock:       in.Stock,
		InStock:     in.Stock > 0,
		Tags:        append([]string(nil), in.Tags...),
	}

	a.mu.Lock()
	a.products = append(a.products, p)
	a.mu.Unlock()

	out := cloneProduct(p)
	return created(&out, "Product created successfully")
}

// UpdateStock adds quantity (which may be negative) to the stock level.
// Stock never drops below zero.
func (a *ProductAPI) UpdateStock(id string, quantity int) model.Response[*model.Product] {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.indexOf(id)
	if i < 0 {
		return notFound[*model.Product]("Product not found")
	}
	p := &a.products[i]
	if p.Stock+quantity < 0 {
		return badRequest[*model.Product]("Insufficient stock")
	}
	p.Stock += quantity
	p.InStock = p.Stock > 0

	out := cloneProduct(*p)
	return model.OK(&out, "Stock updated successfully")
}

func (a *ProductAPI) indexOf(id string) int {
	for i, p := range a.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func cloneProduct(p model.Product) model.Product {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}
