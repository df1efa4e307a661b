package checkout

import (
	"context"
	"fmt"
	"testing"

	"github.com/emabi2002/pngsme/internal/businesses"
	"github.com/emabi2002/pngsme/internal/cart"
	"github.com/emabi2002/pngsme/internal/orders"
	"github.com/emabi2002/pngsme/internal/products"
	"github.com/emabi2002/pngsme/pkg/bus"
	"github.com/emabi2002/pngsme/pkg/config"
	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/emabi2002/pngsme/pkg/enums"
	pkgerrors "github.com/emabi2002/pngsme/pkg/errors"
	"github.com/emabi2002/pngsme/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubTx struct{}

func (stubTx) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type countingTx struct {
	calls int
}

func (c *countingTx) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	c.calls++
	return fn(nil)
}

type stubOrdersRepo struct {
	orders      []*models.Order
	items       []models.OrderItem
	createOrder func(ctx context.Context, order *models.Order) (*models.Order, error)
}

func (s *stubOrdersRepo) WithTx(*gorm.DB) orders.Repository { return s }

func (s *stubOrdersRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if s.createOrder != nil {
		return s.createOrder(ctx, order)
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	s.orders = append(s.orders, order)
	return order, nil
}

func (s *stubOrdersRepo) CreateOrderItems(_ context.Context, items []models.OrderItem) error {
	s.items = append(s.items, items...)
	return nil
}

func (s *stubOrdersRepo) FindOrder(context.Context, uuid.UUID) (*models.Order, error) {
	panic("not implemented")
}

func (s *stubOrdersRepo) ListBuyerOrders(context.Context, uuid.UUID, pagination.Params, orders.ListFilters) (*orders.OrderList, error) {
	panic("not implemented")
}

func (s *stubOrdersRepo) ListSellerOrders(context.Context, uuid.UUID, pagination.Params, orders.ListFilters) (*orders.OrderList, error) {
	panic("not implemented")
}

func (s *stubOrdersRepo) UpdateOrder(context.Context, uuid.UUID, map[string]any) error {
	panic("not implemented")
}

func (s *stubOrdersRepo) FindDeliveredOrderWithProduct(context.Context, uuid.UUID, uuid.UUID) (*models.Order, error) {
	panic("not implemented")
}

type stubProductRepo struct {
	products     map[uuid.UUID]*models.Product
	reserveStock func(ctx context.Context, productID uuid.UUID, qty int) (bool, error)
}

func (s *stubProductRepo) WithTx(*gorm.DB) products.Repository { return s }

func (s *stubProductRepo) Create(context.Context, *models.Product) (*models.Product, error) {
	panic("not implemented")
}

func (s *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProductRepo) List(context.Context, pagination.Params, products.ListFilters) (*products.ProductList, error) {
	panic("not implemented")
}

func (s *stubProductRepo) Update(context.Context, uuid.UUID, map[string]any) error {
	panic("not implemented")
}

func (s *stubProductRepo) ReserveStock(ctx context.Context, productID uuid.UUID, qty int) (bool, error) {
	if s.reserveStock != nil {
		return s.reserveStock(ctx, productID, qty)
	}
	return true, nil
}

func (s *stubProductRepo) ReleaseStock(context.Context, uuid.UUID, int) error {
	return nil
}

type stubBusinessRepo struct {
	businesses map[uuid.UUID]*models.Business
}

func (s *stubBusinessRepo) WithTx(*gorm.DB) businesses.Repository { return s }

func (s *stubBusinessRepo) Create(context.Context, *models.Business) (*models.Business, error) {
	panic("not implemented")
}

func (s *stubBusinessRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Business, error) {
	if business, ok := s.businesses[id]; ok {
		return business, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubBusinessRepo) FindBySlug(context.Context, string) (*models.Business, error) {
	panic("not implemented")
}

func (s *stubBusinessRepo) FindByOwner(context.Context, uuid.UUID) (*models.Business, error) {
	panic("not implemented")
}

func (s *stubBusinessRepo) List(context.Context, pagination.Params, businesses.ListFilters) (*businesses.BusinessList, error) {
	panic("not implemented")
}

func (s *stubBusinessRepo) Update(context.Context, uuid.UUID, map[string]any) error {
	panic("not implemented")
}

type fixture struct {
	service   Service
	cartStore *cart.Store
	orders    *stubOrdersRepo
	products  *stubProductRepo
	buyerID   uuid.UUID
}

func testCheckoutConfig() config.CheckoutConfig {
	return config.CheckoutConfig{
		DeliveryFee:    10,
		CommissionRate: 0.05,
		MinOrderAmount: 5,
		Currency:       "PGK",
	}
}

func approvedBusiness(id uuid.UUID) *models.Business {
	return &models.Business{ID: id, Status: enums.BusinessStatusApproved}
}

func newFixture(t *testing.T, ordersRepo *stubOrdersRepo, productRepo *stubProductRepo, businessRepo *stubBusinessRepo) *fixture {
	t.Helper()

	cartStore, err := cart.NewStore(cart.NewMemoryStorage(), nil, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	svc, err := NewService(cartStore, ordersRepo, productRepo, businessRepo, stubTx{}, testCheckoutConfig(), bus.NopPublisher{}, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return &fixture{
		service:   svc,
		cartStore: cartStore,
		orders:    ordersRepo,
		products:  productRepo,
		buyerID:   uuid.New(),
	}
}

func (f *fixture) addProductToCart(ctx context.Context, product *models.Product, qty int) {
	f.cartStore.AddItem(ctx, f.buyerID, cart.Item{
		ProductID:  product.ID,
		BusinessID: product.BusinessID,
		Name:       product.Name,
		UnitPrice:  product.Price,
		Quantity:   qty,
	})
}

func codInput(buyerID uuid.UUID) Input {
	return Input{
		BuyerUserID:     buyerID,
		PaymentMethod:   enums.PaymentMethodCOD,
		DeliveryMethod:  enums.DeliveryMethodSellerDelivery,
		DeliveryAddress: "Section 35, Lot 12, Gerehu",
	}
}

func TestExecutePartitionsCartBySeller(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sellerA := uuid.New()
	sellerB := uuid.New()

	productA := &models.Product{
		ID:         uuid.New(),
		BusinessID: sellerA,
		Name:       "taro bundle",
		Type:       enums.ProductTypeProduct,
		Price:      decimal.RequireFromString("20.00"),
		Active:     true,
	}
	productB := &models.Product{
		ID:         uuid.New(),
		BusinessID: sellerB,
		Name:       "woven basket",
		Type:       enums.ProductTypeProduct,
		Price:      decimal.RequireFromString("50.00"),
		Active:     true,
	}

	ordersRepo := &stubOrdersRepo{}
	f := newFixture(t, ordersRepo,
		&stubProductRepo{products: map[uuid.UUID]*models.Product{productA.ID: productA, productB.ID: productB}},
		&stubBusinessRepo{businesses: map[uuid.UUID]*models.Business{sellerA: approvedBusiness(sellerA), sellerB: approvedBusiness(sellerB)}},
	)

	f.addProductToCart(ctx, productA, 2)
	f.addProductToCart(ctx, productB, 1)

	result, err := f.service.Execute(ctx, codInput(f.buyerID))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Orders) != 2 {
		t.Fatalf("len(orders) = %d, want 2", len(result.Orders))
	}
	if len(ordersRepo.orders) != 2 {
		t.Fatalf("persisted orders = %d, want 2", len(ordersRepo.orders))
	}

	byID := map[uuid.UUID]*models.Order{}
	for _, order := range ordersRepo.orders {
		byID[order.SellerBusinessID] = order
	}

	orderA := byID[sellerA]
	if orderA == nil {
		t.Fatalf("no order persisted for seller %s", sellerA)
	}
	if !orderA.Subtotal.Equal(decimal.RequireFromString("40.00")) {
		t.Errorf("seller A subtotal = %s, want 40.00", orderA.Subtotal)
	}
	if !orderA.DeliveryFee.Equal(decimal.NewFromInt(10)) {
		t.Errorf("seller A delivery fee = %s, want 10", orderA.DeliveryFee)
	}
	if !orderA.CommissionAmount.Equal(decimal.RequireFromString("2.00")) {
		t.Errorf("seller A commission = %s, want 2.00", orderA.CommissionAmount)
	}
	if !orderA.TotalAmount.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("seller A total = %s, want 50.00", orderA.TotalAmount)
	}
	if orderA.Status != enums.OrderStatusPendingConfirmation {
		t.Errorf("seller A status = %s, want %s", orderA.Status, enums.OrderStatusPendingConfirmation)
	}
	if orderA.Currency != "PGK" {
		t.Errorf("seller A currency = %q, want PGK", orderA.Currency)
	}

	if got := len(f.cartStore.Items(ctx, f.buyerID)); got != 0 {
		t.Fatalf("cart items after checkout = %d, want 0", got)
	}
}

func TestExecuteRejectsBadInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, &stubOrdersRepo{}, &stubProductRepo{}, &stubBusinessRepo{})

	cases := []struct {
		name  string
		input Input
		code  pkgerrors.Code
	}{
		{
			name:  "unauthenticated",
			input: Input{PaymentMethod: enums.PaymentMethodCOD, DeliveryMethod: enums.DeliveryMethodPickup},
			code:  pkgerrors.CodeUnauthorized,
		},
		{
			name: "unavailable payment method",
			input: Input{
				BuyerUserID:    uuid.New(),
				PaymentMethod:  enums.PaymentMethodCard,
				DeliveryMethod: enums.DeliveryMethodPickup,
			},
			code: pkgerrors.CodeValidation,
		},
		{
			name: "missing address for delivery",
			input: Input{
				BuyerUserID:    uuid.New(),
				PaymentMethod:  enums.PaymentMethodCOD,
				DeliveryMethod: enums.DeliveryMethodSellerDelivery,
			},
			code: pkgerrors.CodeValidation,
		},
		{
			name: "empty cart",
			input: Input{
				BuyerUserID:    uuid.New(),
				PaymentMethod:  enums.PaymentMethodCOD,
				DeliveryMethod: enums.DeliveryMethodPickup,
			},
			code: pkgerrors.CodeValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.Execute(ctx, tc.input)
			if err == nil {
				t.Fatal("expected error")
			}
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != tc.code {
				t.Fatalf("error = %v, want code %s", err, tc.code)
			}
		})
	}
}

func TestExecuteEnforcesMinimumOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seller := uuid.New()
	product := &models.Product{
		ID:         uuid.New(),
		BusinessID: seller,
		Name:       "betel nut",
		Type:       enums.ProductTypeProduct,
		Price:      decimal.RequireFromString("2.00"),
		Active:     true,
	}

	f := newFixture(t, &stubOrdersRepo{},
		&stubProductRepo{products: map[uuid.UUID]*models.Product{product.ID: product}},
		&stubBusinessRepo{businesses: map[uuid.UUID]*models.Business{seller: approvedBusiness(seller)}},
	)
	f.addProductToCart(ctx, product, 1)

	_, err := f.service.Execute(ctx, codInput(f.buyerID))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("error = %v, want validation code", err)
	}
}

func TestExecuteKeepsOrdersWhenOneGroupFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	goodSeller := uuid.New()
	badSeller := uuid.New()

	goodProduct := &models.Product{
		ID:         uuid.New(),
		BusinessID: goodSeller,
		Name:       "smoked fish",
		Type:       enums.ProductTypeProduct,
		Price:      decimal.RequireFromString("30.00"),
		Active:     true,
	}
	badProduct := &models.Product{
		ID:         uuid.New(),
		BusinessID: badSeller,
		Name:       "out of stock item",
		Type:       enums.ProductTypeProduct,
		Price:      decimal.RequireFromString("25.00"),
		Active:     true,
	}

	productRepo := &stubProductRepo{
		products: map[uuid.UUID]*models.Product{goodProduct.ID: goodProduct, badProduct.ID: badProduct},
		reserveStock: func(_ context.Context, productID uuid.UUID, _ int) (bool, error) {
			return productID != badProduct.ID, nil
		},
	}
	ordersRepo := &stubOrdersRepo{}
	f := newFixture(t, ordersRepo, productRepo,
		&stubBusinessRepo{businesses: map[uuid.UUID]*models.Business{goodSeller: approvedBusiness(goodSeller), badSeller: approvedBusiness(badSeller)}},
	)

	f.addProductToCart(ctx, goodProduct, 1)
	f.addProductToCart(ctx, badProduct, 1)

	result, err := f.service.Execute(ctx, codInput(f.buyerID))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Orders) != 1 {
		t.Fatalf("len(orders) = %d, want 1", len(result.Orders))
	}
	if result.Orders[0].SellerBusinessID != goodSeller {
		t.Fatalf("order seller = %s, want %s", result.Orders[0].SellerBusinessID, goodSeller)
	}

	var failed *Warning
	for i := range result.Warnings {
		if result.Warnings[i].Code == WarnGroupFailed {
			failed = &result.Warnings[i]
		}
	}
	if failed == nil || failed.SellerBusinessID != badSeller {
		t.Fatalf("warnings = %+v, want group_failed for %s", result.Warnings, badSeller)
	}

	if got := len(f.cartStore.Items(ctx, f.buyerID)); got != 0 {
		t.Fatalf("cart items after partial checkout = %d, want 0", got)
	}
}

func TestExecuteAllGroupsFailedLeavesCart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seller := uuid.New()
	product := &models.Product{
		ID:         uuid.New(),
		BusinessID: seller,
		Name:       "coffee beans",
		Type:       enums.ProductTypeProduct,
		Price:      decimal.RequireFromString("45.00"),
		Active:     true,
	}

	productRepo := &stubProductRepo{
		products: map[uuid.UUID]*models.Product{product.ID: product},
		reserveStock: func(context.Context, uuid.UUID, int) (bool, error) {
			return false, nil
		},
	}
	f := newFixture(t, &stubOrdersRepo{}, productRepo,
		&stubBusinessRepo{businesses: map[uuid.UUID]*models.Business{seller: approvedBusiness(seller)}},
	)
	f.addProductToCart(ctx, product, 1)

	_, err := f.service.Execute(ctx, codInput(f.buyerID))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("error = %v, want conflict code", err)
	}

	if got := len(f.cartStore.Items(ctx, f.buyerID)); got != 1 {
		t.Fatalf("cart items after failed checkout = %d, want 1", got)
	}
}

func TestExecuteRepricesFromProductRow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seller := uuid.New()
	product := &models.Product{
		ID:         uuid.New(),
		BusinessID: seller,
		Name:       "vanilla beans",
		Type:       enums.ProductTypeProduct,
		Price:      decimal.RequireFromString("60.00"),
		Active:     true,
	}

	ordersRepo := &stubOrdersRepo{}
	f := newFixture(t, ordersRepo,
		&stubProductRepo{products: map[uuid.UUID]*models.Product{product.ID: product}},
		&stubBusinessRepo{businesses: map[uuid.UUID]*models.Business{seller: approvedBusiness(seller)}},
	)

	// Cart still holds the old price.
	f.cartStore.AddItem(ctx, f.buyerID, cart.Item{
		ProductID:  product.ID,
		BusinessID: seller,
		Name:       product.Name,
		UnitPrice:  decimal.RequireFromString("55.00"),
		Quantity:   1,
	})

	result, err := f.service.Execute(ctx, codInput(f.buyerID))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var repriced *Warning
	for i := range result.Warnings {
		if result.Warnings[i].Code == WarnRepriced {
			repriced = &result.Warnings[i]
		}
	}
	if repriced == nil {
		t.Fatalf("warnings = %+v, want repriced warning", result.Warnings)
	}
	if !repriced.NewPrice.Equal(product.Price) {
		t.Errorf("new price = %s, want %s", repriced.NewPrice, product.Price)
	}

	if len(ordersRepo.orders) != 1 {
		t.Fatalf("persisted orders = %d, want 1", len(ordersRepo.orders))
	}
	if !ordersRepo.orders[0].Subtotal.Equal(decimal.RequireFromString("60.00")) {
		t.Errorf("subtotal = %s, want the authoritative price", ordersRepo.orders[0].Subtotal)
	}
}

func TestExecuteSkipsStockReservationForServices(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seller := uuid.New()
	service := &models.Product{
		ID:         uuid.New(),
		BusinessID: seller,
		Name:       "bookkeeping session",
		Type:       enums.ProductTypeService,
		Price:      decimal.RequireFromString("100.00"),
		Active:     true,
	}

	productRepo := &stubProductRepo{
		products: map[uuid.UUID]*models.Product{service.ID: service},
		reserveStock: func(context.Context, uuid.UUID, int) (bool, error) {
			return false, fmt.Errorf("reserve should not be called for services")
		},
	}
	f := newFixture(t, &stubOrdersRepo{}, productRepo,
		&stubBusinessRepo{businesses: map[uuid.UUID]*models.Business{seller: approvedBusiness(seller)}},
	)
	f.addProductToCart(ctx, service, 1)

	if _, err := f.service.Execute(ctx, codInput(f.buyerID)); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestExecuteRetriesOrderNumberCollisionOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seller := uuid.New()
	product := &models.Product{
		ID:         uuid.New(),
		BusinessID: seller,
		Name:       "cocoa sacks",
		Type:       enums.ProductTypeProduct,
		Price:      decimal.RequireFromString("80.00"),
		Active:     true,
	}

	ordersRepo := &stubOrdersRepo{}
	attempts := 0
	ordersRepo.createOrder = func(_ context.Context, order *models.Order) (*models.Order, error) {
		attempts++
		if attempts == 1 {
			return nil, fmt.Errorf(`duplicate key value violates unique constraint "idx_orders_order_number"`)
		}
		order.ID = uuid.New()
		ordersRepo.orders = append(ordersRepo.orders, order)
		return order, nil
	}

	cartStore, err := cart.NewStore(cart.NewMemoryStorage(), nil, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	tx := &countingTx{}
	svc, err := NewService(cartStore, ordersRepo,
		&stubProductRepo{products: map[uuid.UUID]*models.Product{product.ID: product}},
		&stubBusinessRepo{businesses: map[uuid.UUID]*models.Business{seller: approvedBusiness(seller)}},
		tx, testCheckoutConfig(), bus.NopPublisher{}, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	buyerID := uuid.New()
	cartStore.AddItem(ctx, buyerID, cart.Item{
		ProductID:  product.ID,
		BusinessID: product.BusinessID,
		Name:       product.Name,
		UnitPrice:  product.Price,
		Quantity:   1,
	})

	result, err := svc.Execute(ctx, codInput(buyerID))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("create attempts = %d, want 2", attempts)
	}
	// The collision aborts the first group transaction; the retry opens a
	// new one rather than reusing the aborted transaction.
	if tx.calls != 2 {
		t.Fatalf("transaction runs = %d, want 2", tx.calls)
	}
	if len(result.Orders) != 1 {
		t.Fatalf("len(orders) = %d, want 1", len(result.Orders))
	}
}

func TestExecutePickupWaivesDeliveryFee(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seller := uuid.New()
	product := &models.Product{
		ID:         uuid.New(),
		BusinessID: seller,
		Name:       "garden tools",
		Type:       enums.ProductTypeProduct,
		Price:      decimal.RequireFromString("35.00"),
		Active:     true,
	}

	ordersRepo := &stubOrdersRepo{}
	f := newFixture(t, ordersRepo,
		&stubProductRepo{products: map[uuid.UUID]*models.Product{product.ID: product}},
		&stubBusinessRepo{businesses: map[uuid.UUID]*models.Business{seller: approvedBusiness(seller)}},
	)
	f.addProductToCart(ctx, product, 1)

	input := codInput(f.buyerID)
	input.DeliveryMethod = enums.DeliveryMethodPickup
	input.DeliveryAddress = ""

	if _, err := f.service.Execute(ctx, input); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(ordersRepo.orders) != 1 {
		t.Fatalf("persisted orders = %d, want 1", len(ordersRepo.orders))
	}
	order := ordersRepo.orders[0]
	if !order.DeliveryFee.IsZero() {
		t.Errorf("delivery fee = %s, want 0", order.DeliveryFee)
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("35.00")) {
		t.Errorf("total = %s, want 35.00", order.TotalAmount)
	}
}

func TestExecuteBankTransferStartsPendingPayment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seller := uuid.New()
	product := &models.Product{
		ID:         uuid.New(),
		BusinessID: seller,
		Name:       "solar lamp",
		Type:       enums.ProductTypeProduct,
		Price:      decimal.RequireFromString("120.00"),
		Active:     true,
	}

	ordersRepo := &stubOrdersRepo{}
	f := newFixture(t, ordersRepo,
		&stubProductRepo{products: map[uuid.UUID]*models.Product{product.ID: product}},
		&stubBusinessRepo{businesses: map[uuid.UUID]*models.Business{seller: approvedBusiness(seller)}},
	)
	f.addProductToCart(ctx, product, 1)

	input := codInput(f.buyerID)
	input.PaymentMethod = enums.PaymentMethodBankTransfer

	if _, err := f.service.Execute(ctx, input); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := ordersRepo.orders[0].Status; got != enums.OrderStatusPendingPayment {
		t.Fatalf("status = %s, want %s", got, enums.OrderStatusPendingPayment)
	}
}

func TestExecuteUnapprovedSellerFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seller := uuid.New()
	product := &models.Product{
		ID:         uuid.New(),
		BusinessID: seller,
		Name:       "rice bags",
		Type:       enums.ProductTypeProduct,
		Price:      decimal.RequireFromString("90.00"),
		Active:     true,
	}

	f := newFixture(t, &stubOrdersRepo{},
		&stubProductRepo{products: map[uuid.UUID]*models.Product{product.ID: product}},
		&stubBusinessRepo{businesses: map[uuid.UUID]*models.Business{
			seller: {ID: seller, Status: enums.BusinessStatusPending},
		}},
	)
	f.addProductToCart(ctx, product, 1)

	_, err := f.service.Execute(ctx, codInput(f.buyerID))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("error = %v, want conflict code", err)
	}
}
