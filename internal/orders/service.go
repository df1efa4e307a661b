package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// Service defines order lifecycle operations beyond repository reads.
type Service interface {
	Get(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListForBuyer(ctx context.Context, buyerUserID uuid.UUID, params pagination.Params, filters ListFilters) (*OrderList, error)
	ListForSeller(ctx context.Context, sellerBusinessID uuid.UUID, params pagination.Params, filters ListFilters) (*OrderList, error)
	SellerTransition(ctx context.Context, input SellerTransitionInput) (*models.Order, error)
	ConfirmDelivery(ctx context.Context, buyerUserID, orderID uuid.UUID) (*models.Order, error)
}

// stockReleaser is the slice of the products repository needed to return
// reserved units when an order is cancelled.
type stockReleaser interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ReleaseStock(ctx context.Context, productID uuid.UUID, qty int) error
}

var _ stockReleaser = (products.Repository)(nil)

type service struct {
	repo    Repository
	stock   stockReleaser
	bus     bus.Publisher
	metrics *metrics.MarketplaceMetrics
	now     func() time.Time
}

// NewService builds an orders service with the required dependencies.
func NewService(repo Repository, stock stockReleaser, publisher bus.Publisher, m *metrics.MarketplaceMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if stock == nil {
		return nil, fmt.Errorf("stock releaser required")
	}
	if publisher == nil {
		publisher = bus.NopPublisher{}
	}
	return &service{
		repo:    repo,
		stock:   stock,
		bus:     publisher,
		metrics: m,
		now:     time.Now,
	}, nil
}

func (s *service) Get(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, err
	}
	return order, nil
}

func (s *service) ListForBuyer(ctx context.Context, buyerUserID uuid.UUID, params pagination.Params, filters ListFilters) (*OrderList, error) {
	if buyerUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	return s.repo.ListBuyerOrders(ctx, buyerUserID, params, filters)
}

func (s *service) ListForSeller(ctx context.Context, sellerBusinessID uuid.UUID, params pagination.Params, filters ListFilters) (*OrderList, error) {
	if sellerBusinessID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "seller business required")
	}
	return s.repo.ListSellerOrders(ctx, sellerBusinessID, params, filters)
}

// SellerTransition moves an order along the operational state machine on
// behalf of the selling business.
func (s *service) SellerTransition(ctx context.Context, input SellerTransitionInput) (*models.Order, error) {
	order, err := s.Get(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.SellerBusinessID != input.SellerBusinessID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another business")
	}
	if !input.Target.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", input.Target))
	}
	if order.Status == input.Target {
		return order, nil
	}
	if order.Status.IsTerminal() {
		return nil, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("order is final in state %s", order.Status),
		)
	}
	if !CanTransition(order.Status, input.Target) {
		return nil, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move order from %s to %s", order.Status, input.Target),
		)
	}

	return s.apply(ctx, order, input.Target, &input)
}

// ConfirmDelivery lets the buyer acknowledge receipt of an out-for-delivery order.
func (s *service) ConfirmDelivery(ctx context.Context, buyerUserID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerUserID != buyerUserID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another buyer")
	}
	if order.Status == enums.OrderStatusDelivered {
		return order, nil
	}
	if !CanTransition(order.Status, enums.OrderStatusDelivered) {
		return nil, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move order from %s to %s", order.Status, enums.OrderStatusDelivered),
		)
	}

	return s.apply(ctx, order, enums.OrderStatusDelivered, nil)
}

func (s *service) apply(ctx context.Context, order *models.Order, target enums.OrderStatus, input *SellerTransitionInput) (*models.Order, error) {
	now := s.now().UTC()
	updates := map[string]any{"status": target}

	// Timestamps are written once and never overwritten.
	switch target {
	case enums.OrderStatusConfirmed:
		if order.ConfirmedAt == nil {
			updates["confirmed_at"] = &now
		}
	case enums.OrderStatusDelivered:
		if order.DeliveredAt == nil {
			updates["delivered_at"] = &now
		}
		if order.PaymentMethod == enums.PaymentMethodCOD {
			updates["payment_status"] = enums.PaymentStatusPaid
		}
	case enums.OrderStatusCancelled:
		if input != nil {
			updates["cancelled_by"] = &input.ActorUserID
			if input.CancelReason != "" {
				updates["cancel_reason"] = input.CancelReason
			}
		}
	}

	if err := s.repo.UpdateOrder(ctx, order.ID, updates); err != nil {
		return nil, err
	}

	if target == enums.OrderStatusCancelled {
		s.restock(ctx, order)
	}

	s.metrics.IncStatusChange(target.String())
	s.bus.Publish(ctx, bus.Event{
		Topic: bus.TopicOrderStatusChanged,
		Payload: map[string]any{
			"order_id": order.ID.String(),
			"from":     order.Status.String(),
			"to":       target.String(),
		},
	})

	return s.repo.FindOrder(ctx, order.ID)
}

// restock returns the units reserved at checkout. Best effort: the
// cancellation is already persisted, so a failed release is not unwound.
func (s *service) restock(ctx context.Context, order *models.Order) {
	for _, item := range order.Items {
		product, err := s.stock.FindByID(ctx, item.ProductID)
		if err != nil || product.Type != enums.ProductTypeProduct {
			continue
		}
		_ = s.stock.ReleaseStock(ctx, item.ProductID, item.Quantity)
	}
}
