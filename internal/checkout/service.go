package checkout

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/emabi2002/pngsme/internal/businesses"
	"github.com/emabi2002/pngsme/internal/cart"
	"github.com/emabi2002/pngsme/internal/orders"
	"github.com/emabi2002/pngsme/internal/products"
	"github.com/emabi2002/pngsme/pkg/bus"
	"github.com/emabi2002/pngsme/pkg/config"
	"github.com/emabi2002/pngsme/pkg/db"
	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/emabi2002/pngsme/pkg/enums"
	pkgerrors "github.com/emabi2002/pngsme/pkg/errors"
	"github.com/emabi2002/pngsme/pkg/logger"
	"github.com/emabi2002/pngsme/pkg/metrics"
	"github.com/emabi2002/pngsme/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service converts a buyer's cart into one order per seller business.
type Service interface {
	Execute(ctx context.Context, input Input) (*Result, error)
}

type service struct {
	cartStore  *cart.Store
	ordersRepo orders.Repository
	products   products.Repository
	businesses businesses.Repository
	tx         txRunner
	cfg        config.CheckoutConfig
	bus        bus.Publisher
	metrics    *metrics.MarketplaceMetrics
	logg       *logger.Logger
	now        func() time.Time
}

// NewService builds a checkout service with the required dependencies.
func NewService(
	cartStore *cart.Store,
	ordersRepo orders.Repository,
	productRepo products.Repository,
	businessRepo businesses.Repository,
	tx txRunner,
	cfg config.CheckoutConfig,
	publisher bus.Publisher,
	m *metrics.MarketplaceMetrics,
	logg *logger.Logger,
) (Service, error) {
	if cartStore == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if businessRepo == nil {
		return nil, fmt.Errorf("businesses repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if publisher == nil {
		publisher = bus.NopPublisher{}
	}
	return &service{
		cartStore:  cartStore,
		ordersRepo: ordersRepo,
		products:   productRepo,
		businesses: businessRepo,
		tx:         tx,
		cfg:        cfg,
		bus:        publisher,
		metrics:    m,
		logg:       logg,
		now:        time.Now,
	}, nil
}

// Execute runs the checkout. Each seller group commits independently; a failed
// group never rolls back orders already created for other sellers.
func (s *service) Execute(ctx context.Context, input Input) (*Result, error) {
	started := s.now()

	if input.BuyerUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required for checkout")
	}
	if !input.PaymentMethod.IsValid() || !input.PaymentMethod.IsAvailable() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("payment method %q is not available", input.PaymentMethod))
	}
	if !input.DeliveryMethod.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid delivery method %q", input.DeliveryMethod))
	}
	if input.DeliveryMethod != enums.DeliveryMethodPickup && strings.TrimSpace(input.DeliveryAddress) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery address is required")
	}

	items := s.cartStore.Items(ctx, input.BuyerUserID)
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	total := s.cartStore.Total(ctx, input.BuyerUserID)
	if total.LessThan(s.cfg.MinOrderAmountValue()) {
		return nil, pkgerrors.New(
			pkgerrors.CodeValidation,
			fmt.Sprintf("order total must be at least %s %s", s.cfg.MinOrderAmountValue(), s.cfg.Currency),
		)
	}

	groups := groupBySeller(items)
	if len(groups) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart contains no purchasable items")
	}

	result := &Result{}
	var failures error

	for _, group := range groups {
		created, warnings, err := s.checkoutGroup(ctx, input, group)
		result.Warnings = append(result.Warnings, warnings...)
		if err != nil {
			failures = multierr.Append(failures, fmt.Errorf("seller %s: %w", group.sellerID, err))
			s.metrics.IncCheckoutFailure(failureReason(err))
			result.Warnings = append(result.Warnings, Warning{
				SellerBusinessID: group.sellerID,
				Code:             WarnGroupFailed,
				Message:          err.Error(),
			})
			continue
		}
		result.Orders = append(result.Orders, *created)
		s.metrics.IncOrderCreated(input.PaymentMethod.String())
	}

	if len(result.Orders) == 0 {
		s.metrics.ObserveCheckout("failure", s.now().Sub(started))
		if failures != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, failures, "checkout failed for all sellers")
		}
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "checkout failed for all sellers")
	}

	// At least one order exists, so the purchased items leave the cart even
	// when other groups failed.
	s.cartStore.Clear(ctx, input.BuyerUserID)
	s.metrics.ObserveCheckout("success", s.now().Sub(started))

	for _, order := range result.Orders {
		s.bus.Publish(ctx, bus.Event{
			Topic: bus.TopicOrderCreated,
			Payload: map[string]any{
				"order_id":     order.OrderID.String(),
				"order_number": order.OrderNumber,
				"buyer_id":     input.BuyerUserID.String(),
				"seller_id":    order.SellerBusinessID.String(),
			},
		})
	}

	if failures != nil && s.logg != nil {
		s.logg.Warn(ctx, fmt.Sprintf("partial checkout: %v", failures))
	}
	return result, nil
}

type sellerGroup struct {
	sellerID uuid.UUID
	items    []cart.Item
}

// groupBySeller partitions cart entries by business id. Entries without a
// resolvable seller are dropped so a malformed entry cannot block the rest.
func groupBySeller(items []cart.Item) []sellerGroup {
	index := map[uuid.UUID]int{}
	var groups []sellerGroup
	for _, item := range items {
		if item.BusinessID == uuid.Nil || item.Quantity < 1 {
			continue
		}
		pos, ok := index[item.BusinessID]
		if !ok {
			pos = len(groups)
			index[item.BusinessID] = pos
			groups = append(groups, sellerGroup{sellerID: item.BusinessID})
		}
		groups[pos].items = append(groups[pos].items, item)
	}
	return groups
}

func (s *service) checkoutGroup(ctx context.Context, input Input, group sellerGroup) (*CreatedOrder, []Warning, error) {
	var created *CreatedOrder
	var warnings []Warning

	run := func(tx *gorm.DB) error {
		ordersRepo := s.ordersRepo.WithTx(tx)
		productRepo := s.products.WithTx(tx)
		businessRepo := s.businesses.WithTx(tx)

		business, err := businessRepo.FindByID(ctx, group.sellerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "seller business not found")
			}
			return err
		}
		if !business.IsApproved() {
			return pkgerrors.New(pkgerrors.CodeConflict, "seller business is not approved")
		}

		subtotal := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(group.items))

		for _, item := range group.items {
			product, err := productRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s no longer exists", item.ProductID))
				}
				return err
			}
			if !product.Active {
				return pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("product %q is no longer available", product.Name))
			}
			if product.BusinessID != group.sellerID {
				return pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("product %q moved to another seller", product.Name))
			}

			// The product row is authoritative; cart prices are advisory.
			unitPrice := product.Price
			if !unitPrice.Equal(item.UnitPrice) {
				warnings = append(warnings, Warning{
					SellerBusinessID: group.sellerID,
					ProductID:        product.ID,
					Code:             WarnRepriced,
					Message:          fmt.Sprintf("price of %q changed", product.Name),
					OldPrice:         item.UnitPrice,
					NewPrice:         unitPrice,
				})
			}

			if product.Type == enums.ProductTypeProduct {
				reserved, err := productRepo.ReserveStock(ctx, product.ID, item.Quantity)
				if err != nil {
					return err
				}
				if !reserved {
					return pkgerrors.New(
						pkgerrors.CodeConflict,
						fmt.Sprintf("insufficient stock for %q", product.Name),
					)
				}
			}

			lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			subtotal = subtotal.Add(lineTotal)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:  product.ID,
				Quantity:   item.Quantity,
				UnitPrice:  unitPrice,
				TotalPrice: lineTotal,
				Snapshot: types.ProductSnapshot{
					Name:        product.Name,
					Description: product.Description,
					Image:       product.PrimaryImage(),
				},
			})
		}

		deliveryFee := s.cfg.DeliveryFeeAmount()
		if input.DeliveryMethod == enums.DeliveryMethodPickup {
			deliveryFee = decimal.Zero
		}
		commission := subtotal.Mul(s.cfg.CommissionRateFraction()).Round(2)
		totalAmount := subtotal.Add(deliveryFee)

		order := &models.Order{
			BuyerUserID:      input.BuyerUserID,
			SellerBusinessID: group.sellerID,
			Status:           initialStatus(input.PaymentMethod),
			PaymentStatus:    enums.PaymentStatusPending,
			PaymentMethod:    input.PaymentMethod,
			DeliveryMethod:   input.DeliveryMethod,
			Subtotal:         subtotal,
			DeliveryFee:      deliveryFee,
			CommissionAmount: commission,
			TotalAmount:      totalAmount,
			Currency:         s.cfg.Currency,
			DeliveryAddress:  strings.TrimSpace(input.DeliveryAddress),
			DeliveryProvince: strings.TrimSpace(input.DeliveryProvince),
			DeliveryDistrict: strings.TrimSpace(input.DeliveryDistrict),
			DeliveryPhone:    strings.TrimSpace(input.DeliveryPhone),
			DeliveryNotes:    strings.TrimSpace(input.DeliveryNotes),
		}

		order.OrderNumber = s.generateOrderNumber()
		if _, err := ordersRepo.CreateOrder(ctx, order); err != nil {
			return err
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := ordersRepo.CreateOrderItems(ctx, orderItems); err != nil {
			return err
		}

		created = &CreatedOrder{
			OrderID:          order.ID,
			OrderNumber:      order.OrderNumber,
			SellerBusinessID: group.sellerID,
			Status:           order.Status,
			TotalAmount:      totalAmount,
		}
		return nil
	}

	err := s.tx.WithTx(ctx, run)
	if err != nil && db.IsUniqueViolation(err, "order_number") {
		// A colliding order number aborts the whole group transaction, so
		// the retry re-runs the group once with a fresh number.
		created = nil
		warnings = warnings[:0]
		err = s.tx.WithTx(ctx, run)
	}
	if err != nil {
		return nil, warnings, err
	}
	return created, warnings, nil
}

func (s *service) generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%04d", s.now().UTC().Format("20060102"), randomSuffix())
}

func randomSuffix() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return time.Now().UnixNano() % 10000
	}
	return n.Int64()
}

func initialStatus(method enums.PaymentMethod) enums.OrderStatus {
	if method == enums.PaymentMethodCOD {
		return enums.OrderStatusPendingConfirmation
	}
	return enums.OrderStatusPendingPayment
}

func failureReason(err error) string {
	if typed := pkgerrors.As(err); typed != nil {
		return string(typed.Code())
	}
	return "internal"
}
