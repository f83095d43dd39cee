// Package mockapi is an in-memory stand-in for a small REST backend with
// users ("contacts") and products.
//
// Every method returns a model.Response envelope instead of an error, the
// way a JSON API would. StatusCode on the envelope is the HTTP status the
// handler layer should send.
package mockapi

import (
	"net/http"
	"strings"

	emailaddress "github.com/mcnijman/go-emailaddress"

	"github.com/sakif/go-examples/internal/model"
)

func created[T any](data T, message string) model.Response[T] {
	res := model.OK(data, message)
	res.StatusCode = http.StatusCreated
	return res
}

func badRequest[T any](message string) model.Response[T] {
	return model.Fail[T](message, http.StatusBadRequest)
}

func notFound[T any](message string) model.Response[T] {
	return model.Fail[T](message, http.StatusNotFound)
}

// validEmail reports whether s parses as a single RFC 5322 style address
// (local part, @, domain with a TLD) after trimming surrounding spaces.
func validEmail(s string) bool {
	_, err := emailaddress.Parse(strings.TrimSpace(s))
	return err == nil
}
