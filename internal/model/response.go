package model

import "time"

// Response is the envelope every mock API call returns.
//
// Success decides which of Data or Error is meaningful. StatusCode mirrors
// the HTTP status the handler layer sends.
type Response[T any] struct {
	Success    bool      `json:"success"`
	Data       T         `json:"data,omitempty"`
	Error      string    `json:"error,omitempty"`
	Message    string    `json:"message,omitempty"`
	StatusCode int       `json:"statusCode"`
	Timestamp  time.Time `json:"timestamp"`
}

// OK builds a successful envelope with status 200.
func OK[T any](data T, message string) Response[T] {
	return Response[T]{
		Success:    true,
		Data:       data,
		Message:    message,
		StatusCode: 200,
		Timestamp:  time.Now().UTC(),
	}
}

// Fail builds an error envelope with the given status code.
func Fail[T any](message string, statusCode int) Response[T] {
	return Response[T]{
		Success:    false,
		Error:      message,
		StatusCode: statusCode,
		Timestamp:  time.Now().UTC(),
	}
}

// Pagination describes one page of a larger result set.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Page is a paginated envelope. Nothing in this repository paginates yet;
// the type documents the wire shape.
type Page[T any] struct {
	Response[[]T]
	Pagination Pagination `json:"pagination"`
}

// NewPagination derives TotalPages from the item count and page size.
func NewPagination(page, pageSize, totalItems int) Pagination {
	p := Pagination{Page: page, PageSize: pageSize, TotalItems: totalItems}
	if pageSize > 0 {
		p.TotalPages = (totalItems + pageSize - 1) / pageSize
	}
	return p
}
