package reviews

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/emabi2002/pngsme/pkg/bus"
	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/emabi2002/pngsme/pkg/enums"
	pkgerrors "github.com/emabi2002/pngsme/pkg/errors"
	"github.com/emabi2002/pngsme/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubReviewRepo struct {
	created  *models.Review
	existing *models.Review
	findErr  error
}

func (s *stubReviewRepo) WithTx(*gorm.DB) Repository { return s }

func (s *stubReviewRepo) Create(_ context.Context, review *models.Review) (*models.Review, error) {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	s.created = review
	return review, nil
}

func (s *stubReviewRepo) FindByOrderAndProduct(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (*models.Review, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.existing != nil {
		return s.existing, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubReviewRepo) ListApprovedForProduct(context.Context, uuid.UUID, pagination.Params) (*ReviewList, error) {
	return &ReviewList{}, nil
}

type stubOrderFinder struct {
	order *models.Order
}

func (s *stubOrderFinder) FindDeliveredOrderWithProduct(context.Context, uuid.UUID, uuid.UUID) (*models.Order, error) {
	if s.order == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.order, nil
}

type stubProductLoader struct {
	product *models.Product
}

func (s *stubProductLoader) FindByID(context.Context, uuid.UUID) (*models.Product, error) {
	if s.product == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.product, nil
}

type recordingPublisher struct {
	events []bus.Event
}

func (p *recordingPublisher) Publish(_ context.Context, evt bus.Event) {
	p.events = append(p.events, evt)
}

func TestCreateReviewForDeliveredOrder(t *testing.T) {
	t.Parallel()

	buyerID := uuid.New()
	businessID := uuid.New()
	product := &models.Product{ID: uuid.New(), BusinessID: businessID, Name: "honey jar"}
	order := &models.Order{ID: uuid.New(), BuyerUserID: buyerID, Status: enums.OrderStatusDelivered}

	repo := &stubReviewRepo{}
	publisher := &recordingPublisher{}
	svc, err := NewService(repo, &stubOrderFinder{order: order}, &stubProductLoader{product: product}, publisher, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	review, err := svc.Create(context.Background(), CreateInput{
		ReviewerUserID: buyerID,
		ProductID:      product.ID,
		Rating:         5,
		Comment:        "  very fresh  ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !review.VerifiedPurchase {
		t.Error("review not marked as verified purchase")
	}
	if review.Status != enums.ReviewStatusPending {
		t.Errorf("status = %s, want pending", review.Status)
	}
	if review.TargetBusinessID != businessID {
		t.Errorf("target business = %s, want %s", review.TargetBusinessID, businessID)
	}
	if review.OrderID != order.ID {
		t.Errorf("order = %s, want %s", review.OrderID, order.ID)
	}
	if review.Comment != "very fresh" {
		t.Errorf("comment = %q, want trimmed", review.Comment)
	}
	if len(publisher.events) != 1 || publisher.events[0].Topic != bus.TopicReviewCreated {
		t.Fatalf("events = %+v, want one review created event", publisher.events)
	}
}

func TestCreateReviewWithoutDeliveredOrder(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubReviewRepo{}, &stubOrderFinder{}, &stubProductLoader{}, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{
		ReviewerUserID: uuid.New(),
		ProductID:      uuid.New(),
		Rating:         4,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotEligible {
		t.Fatalf("error = %v, want not eligible", err)
	}
}

func TestCreateReviewValidatesRatingFirst(t *testing.T) {
	t.Parallel()

	// No delivered order exists; an out-of-range rating must still surface
	// as a validation error, not an eligibility error.
	svc, err := NewService(&stubReviewRepo{}, &stubOrderFinder{}, &stubProductLoader{}, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), CreateInput{
			ReviewerUserID: uuid.New(),
			ProductID:      uuid.New(),
			Rating:         rating,
		})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("rating %d: error = %v, want validation", rating, err)
		}
	}
}

func TestCreateReviewDuplicate(t *testing.T) {
	t.Parallel()

	buyerID := uuid.New()
	order := &models.Order{ID: uuid.New(), BuyerUserID: buyerID, Status: enums.OrderStatusDelivered}
	repo := &stubReviewRepo{existing: &models.Review{ID: uuid.New()}}

	svc, err := NewService(repo, &stubOrderFinder{order: order}, &stubProductLoader{}, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{
		ReviewerUserID: buyerID,
		ProductID:      uuid.New(),
		Rating:         3,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("error = %v, want conflict", err)
	}
}

func TestCreateReviewDuplicateLookupFailure(t *testing.T) {
	t.Parallel()

	buyerID := uuid.New()
	order := &models.Order{ID: uuid.New(), BuyerUserID: buyerID, Status: enums.OrderStatusDelivered}
	lookupErr := fmt.Errorf("connection reset")
	repo := &stubReviewRepo{findErr: lookupErr}

	svc, err := NewService(repo, &stubOrderFinder{order: order}, &stubProductLoader{}, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{
		ReviewerUserID: buyerID,
		ProductID:      uuid.New(),
		Rating:         4,
	})
	if !errors.Is(err, lookupErr) {
		t.Fatalf("error = %v, want the lookup failure propagated", err)
	}
	if repo.created != nil {
		t.Fatal("review created despite failed duplicate lookup")
	}
}

func TestCreateReviewRequiresAuth(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubReviewRepo{}, &stubOrderFinder{}, &stubProductLoader{}, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{ProductID: uuid.New(), Rating: 5})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("error = %v, want unauthorized", err)
	}
}
