package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"catalog/internal/apperr"
	"catalog/internal/model"
	"catalog/internal/store"
	"catalog/pkg/validator"
)

// ProductParams carries a create/replace payload. Price is a pointer so a
// missing price is distinguishable from an explicit zero. InStock holds the
// raw decoded JSON value and is coerced to a boolean.
type ProductParams struct {
	Name        string `validate:"required"`
	Description string
	Price       *float64 `validate:"required"`
	Category    string
	InStock     any
}

type ProductService interface {
	ListProducts(ctx context.Context) []model.Product
	GetProduct(ctx context.Context, id string) (model.Product, error)
	CreateProduct(ctx context.Context, params ProductParams) (model.Product, error)
	ReplaceProduct(ctx context.Context, id string, params ProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	store     *store.ProductStore
	validator validator.Validator
}

func NewProductService(store *store.ProductStore, v validator.Validator) ProductService {
	return &productService{
		store:     store,
		validator: v,
	}
}

func (s *productService) ListProducts(ctx context.Context) []model.Product {
	return s.store.ListProducts(ctx)
}

func (s *productService) GetProduct(ctx context.Context, id string) (model.Product, error) {
	product, ok := s.store.GetProduct(ctx, id)
	if !ok {
		return model.Product{}, apperr.ErrProductNotFound
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, params ProductParams) (model.Product, error) {
	if err := s.validateParams(params); err != nil {
		return model.Product{}, err
	}

	product := paramsToProduct(uuid.NewString(), params)
	s.store.AppendProduct(ctx, product)

	return product, nil
}

// ReplaceProduct fully overwrites the record with the given ID. Fields absent
// from the payload end up zero-valued; only the original ID survives.
//
// A missing ID wins over an invalid payload, matching the lookup-then-validate
// order of the handlers this API mirrors.
func (s *productService) ReplaceProduct(ctx context.Context, id string, params ProductParams) (model.Product, error) {
	if _, ok := s.store.GetProduct(ctx, id); !ok {
		return model.Product{}, apperr.ErrProductNotFound
	}

	if err := s.validateParams(params); err != nil {
		return model.Product{}, err
	}

	product := paramsToProduct(id, params)
	if ok := s.store.ReplaceProduct(ctx, id, product); !ok {
		return model.Product{}, apperr.ErrProductNotFound
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if ok := s.store.DeleteProduct(ctx, id); !ok {
		return apperr.ErrProductNotFound
	}
	return nil
}

func (s *productService) validateParams(params ProductParams) error {
	if err := s.validator.Validate(params); err != nil {
		if validator.IsValidationError(err) {
			return apperr.ErrInvalidProductPayload.WrapParent(err)
		}
		return fmt.Errorf("validate product params: %w", err)
	}
	return nil
}

func paramsToProduct(id string, params ProductParams) model.Product {
	return model.Product{
		ID:          id,
		Name:        params.Name,
		Description: params.Description,
		Price:       *params.Price,
		Category:    params.Category,
		InStock:     coerceBool(params.InStock),
	}
}

// coerceBool applies truthy/falsy coercion to a decoded JSON value:
// null, false, 0 and "" are false, everything else is true.
func coerceBool(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}
