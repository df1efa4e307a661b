package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emabi2002/pngsme/internal/businesses"
	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/emabi2002/pngsme/pkg/enums"
	pkgerrors "github.com/emabi2002/pngsme/pkg/errors"
	"github.com/emabi2002/pngsme/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service defines listing operations for sellers and buyers.
type Service interface {
	Create(ctx context.Context, businessID uuid.UUID, input CreateInput) (*models.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, params pagination.Params, filters ListFilters) (*ProductList, error)
	Update(ctx context.Context, businessID, productID uuid.UUID, input UpdateInput) (*models.Product, error)
}

type service struct {
	repo       Repository
	businesses businesses.Repository
}

// NewService builds a products service with the required dependencies.
func NewService(repo Repository, businessRepo businesses.Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if businessRepo == nil {
		return nil, fmt.Errorf("businesses repository required")
	}
	return &service{repo: repo, businesses: businessRepo}, nil
}

func (s *service) Create(ctx context.Context, businessID uuid.UUID, input CreateInput) (*models.Product, error) {
	if businessID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "seller business required")
	}

	business, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "business not found")
		}
		return nil, err
	}
	if !business.IsApproved() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "business is not approved to sell")
	}

	productType, err := enums.ParseProductType(input.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	unit, err := enums.ParseProductUnit(input.Unit)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	price, err := decimal.NewFromString(input.Price)
	if err != nil || price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be a non-negative decimal")
	}

	var categoryID *uuid.UUID
	if input.CategoryID != nil {
		parsed, parseErr := uuid.Parse(*input.CategoryID)
		if parseErr != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid category id")
		}
		categoryID = &parsed
	}

	product := &models.Product{
		BusinessID:  businessID,
		CategoryID:  categoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Type:        productType,
		Unit:        unit,
		Price:       price,
		StockQty:    input.StockQty,
		Active:      true,
	}
	for i, url := range input.Images {
		product.Images = append(product.Images, models.ProductImage{URL: url, Position: i})
	}
	return s.repo.Create(ctx, product)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters ListFilters) (*ProductList, error) {
	return s.repo.List(ctx, params, filters)
}

func (s *service) Update(ctx context.Context, businessID, productID uuid.UUID, input UpdateInput) (*models.Product, error) {
	product, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.BusinessID != businessID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "product belongs to another business")
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		price, parseErr := decimal.NewFromString(*input.Price)
		if parseErr != nil || price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be a non-negative decimal")
		}
		updates["price"] = price
	}
	if input.StockQty != nil {
		if *input.StockQty < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock quantity cannot be negative")
		}
		updates["stock_qty"] = *input.StockQty
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}
	if len(updates) == 0 {
		return product, nil
	}

	if err := s.repo.Update(ctx, productID, updates); err != nil {
		return nil, err
	}
	return s.Get(ctx, productID)
}
