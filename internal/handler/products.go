package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/go-examples/internal/apperror"
	"github.com/sakif/go-examples/internal/mockapi"
)

// ProductHandler exposes the mock product catalogue over HTTP.
type ProductHandler struct {
	api    *mockapi.ProductAPI
	logger *slog.Logger
}

func NewProductHandler(api *mockapi.ProductAPI, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{api: api, logger: logger}
}

// Routes registers the product endpoints on r.
func (h *ProductHandler) Routes(r chi.Router) {
	r.Get("/products", h.HandleList)
	r.Post("/products", h.HandleCreate)
	r.Get("/products/{id}", h.HandleGetByID)
	r.Put("/products/{id}/stock", h.HandleUpdateStock)
}

// HandleList returns the catalogue.
//
// HTTP: GET /api/products?category=electronics&minPrice=10&maxPrice=100
//
// All three query parameters are optional.
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := mockapi.ProductFilter{Category: q.Get("category")}

	var err error
	if filter.MinPrice, err = priceParam(q.Get("minPrice"), "minPrice"); err != nil {
		writeError(w, err)
		return
	}
	if filter.MaxPrice, err = priceParam(q.Get("maxPrice"), "maxPrice"); err != nil {
		writeError(w, err)
		return
	}

	writeResponse(w, h.api.All(filter))
}

func (h *ProductHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.api.Get(chi.URLParam(r, "id")))
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in mockapi.ProductInput
	if err := decodeJSON(r, &in); err != nil {
		h.logger.Warn("invalid product JSON", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	res := h.api.Create(in)
	if res.Success {
		h.logger.Info("product created", slog.String("id", res.Data.ID))
	}
	writeResponse(w, res)
}

// stockRequest is the body of PUT /api/products/{id}/stock. Quantity is a
// delta: negative values remove stock.
type stockRequest struct {
	Quantity *int `json:"quantity"`
}

func (h *ProductHandler) HandleUpdateStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Quantity == nil {
		writeError(w, apperror.ValidationFailed("quantity", "quantity is required"))
		return
	}

	writeResponse(w, h.api.UpdateStock(chi.URLParam(r, "id"), *req.Quantity))
}

func priceParam(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperror.ValidationFailed(name, name+" must be a number")
	}
	return &v, nil
}
