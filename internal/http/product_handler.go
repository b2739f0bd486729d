package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"catalog/internal/apperr"
	"catalog/internal/service"
)

type productHandler struct {
	logger     *slog.Logger
	productSvc service.ProductService
}

func newProductHandler(logger *slog.Logger, productSvc service.ProductService) *productHandler {
	return &productHandler{
		logger:     logger,
		productSvc: productSvc,
	}
}

// productRequest is the create/replace body. InStock stays untyped so the
// service can coerce any truthy/falsy JSON value; Price stays a pointer so a
// missing price fails validation instead of defaulting to zero.
type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	InStock     any      `json:"inStock"`
}

func (h *productHandler) listProducts(w http.ResponseWriter, r *http.Request) error {
	products := h.productSvc.ListProducts(r.Context())

	h.writeJSON(w, r, http.StatusOK, products)
	return nil
}

func (h *productHandler) getProduct(w http.ResponseWriter, r *http.Request) error {
	product, err := h.productSvc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("product service get product: %w", err)
	}

	h.writeJSON(w, r, http.StatusOK, product)
	return nil
}

func (h *productHandler) createProduct(w http.ResponseWriter, r *http.Request) error {
	params, err := decodeProductParams(r)
	if err != nil {
		return err
	}

	product, err := h.productSvc.CreateProduct(r.Context(), params)
	if err != nil {
		return fmt.Errorf("product service create product: %w", err)
	}

	h.writeJSON(w, r, http.StatusCreated, product)
	return nil
}

func (h *productHandler) replaceProduct(w http.ResponseWriter, r *http.Request) error {
	params, err := decodeProductParams(r)
	if err != nil {
		return err
	}

	product, err := h.productSvc.ReplaceProduct(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		return fmt.Errorf("product service replace product: %w", err)
	}

	h.writeJSON(w, r, http.StatusOK, product)
	return nil
}

func (h *productHandler) deleteProduct(w http.ResponseWriter, r *http.Request) error {
	if err := h.productSvc.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		return fmt.Errorf("product service delete product: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// decodeProductParams maps any decoding failure, including a price of the
// wrong JSON type, to the validation error.
func decodeProductParams(r *http.Request) (service.ProductParams, error) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return service.ProductParams{}, apperr.ErrInvalidProductPayload.WrapParent(err)
	}

	return service.ProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		InStock:     req.InStock,
	}, nil
}

func (h *productHandler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "error encoding response", slog.Any("error", err))
	}
}
