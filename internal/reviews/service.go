package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emabi2002/pngsme/internal/orders"
	"github.com/emabi2002/pngsme/internal/products"
	"github.com/emabi2002/pngsme/pkg/bus"
	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/emabi2002/pngsme/pkg/enums"
	pkgerrors "github.com/emabi2002/pngsme/pkg/errors"
	"github.com/emabi2002/pngsme/pkg/metrics"
	"github.com/emabi2002/pngsme/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deliveredOrderFinder is the slice of the orders repository the gate needs.
type deliveredOrderFinder interface {
	FindDeliveredOrderWithProduct(ctx context.Context, buyerUserID, productID uuid.UUID) (*models.Order, error)
}

type productLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

var _ deliveredOrderFinder = (orders.Repository)(nil)
var _ productLoader = (products.Repository)(nil)

// Service gates review creation behind delivered-order proof of purchase.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Review, error)
	ListApproved(ctx context.Context, productID uuid.UUID, params pagination.Params) (*ReviewList, error)
}

type service struct {
	repo     Repository
	orders   deliveredOrderFinder
	products productLoader
	bus      bus.Publisher
	metrics  *metrics.MarketplaceMetrics
}

// NewService builds a reviews service with the required dependencies.
func NewService(repo Repository, orderFinder deliveredOrderFinder, productRepo productLoader, publisher bus.Publisher, m *metrics.MarketplaceMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reviews repository required")
	}
	if orderFinder == nil {
		return nil, fmt.Errorf("order finder required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if publisher == nil {
		publisher = bus.NopPublisher{}
	}
	return &service{
		repo:     repo,
		orders:   orderFinder,
		products: productRepo,
		bus:      publisher,
		metrics:  m,
	}, nil
}

// Create validates the rating first, then requires a delivered order of the
// reviewer containing the product. Accepted reviews are verified purchases in
// pending moderation.
func (s *service) Create(ctx context.Context, input CreateInput) (*models.Review, error) {
	if input.ReviewerUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	order, err := s.orders.FindDeliveredOrderWithProduct(ctx, input.ReviewerUserID, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(
				pkgerrors.CodeNotEligible,
				"reviews require a delivered order containing this product",
			)
		}
		return nil, err
	}

	existing, err := s.repo.FindByOrderAndProduct(ctx, input.ReviewerUserID, order.ID, input.ProductID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "product already reviewed for this order")
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, err
	}

	review := &models.Review{
		OrderID:          order.ID,
		ReviewerUserID:   input.ReviewerUserID,
		TargetBusinessID: product.BusinessID,
		TargetProductID:  product.ID,
		Rating:           input.Rating,
		Comment:          strings.TrimSpace(input.Comment),
		VerifiedPurchase: true,
		Status:           enums.ReviewStatusPending,
	}
	created, err := s.repo.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	s.metrics.IncReviewCreated()
	s.bus.Publish(ctx, bus.Event{
		Topic: bus.TopicReviewCreated,
		Payload: map[string]any{
			"review_id":  created.ID.String(),
			"product_id": product.ID.String(),
		},
	})
	return created, nil
}

func (s *service) ListApproved(ctx context.Context, productID uuid.UUID, params pagination.Params) (*ReviewList, error) {
	return s.repo.ListApprovedForProduct(ctx, productID, params)
}
