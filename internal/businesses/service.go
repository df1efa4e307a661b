package businesses

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/emabi2002/pngsme/pkg/enums"
	pkgerrors "github.com/emabi2002/pngsme/pkg/errors"
	"github.com/emabi2002/pngsme/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service defines business-level operations beyond repository reads.
type Service interface {
	Register(ctx context.Context, ownerUserID uuid.UUID, input RegisterInput) (*models.Business, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Business, error)
	GetBySlug(ctx context.Context, slug string) (*models.Business, error)
	ListApproved(ctx context.Context, params pagination.Params, filters ListFilters) (*BusinessList, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
}

// roleUpdater is the slice of the users repository needed to promote a
// business owner to the seller role.
type roleUpdater interface {
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
}

type service struct {
	repo  Repository
	users roleUpdater
	now   func() time.Time
}

// NewService builds a businesses service with the required dependencies.
func NewService(repo Repository, users roleUpdater) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("businesses repository required")
	}
	if users == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo, users: users, now: time.Now}, nil
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a business name into a URL-safe slug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugCleaner.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *service) Register(ctx context.Context, ownerUserID uuid.UUID, input RegisterInput) (*models.Business, error) {
	if ownerUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}

	if existing, err := s.repo.FindByOwner(ctx, ownerUserID); err == nil && existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "user already owns a business")
	}

	slug := Slugify(input.Name)
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "business name is required")
	}
	if existing, err := s.repo.FindBySlug(ctx, slug); err == nil && existing != nil {
		slug = fmt.Sprintf("%s-%s", slug, uuid.NewString()[:8])
	}

	business := &models.Business{
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		Sectors:     input.Sectors,
		Province:    strings.TrimSpace(input.Province),
		District:    strings.TrimSpace(input.District),
		Phone:       strings.TrimSpace(input.Phone),
		BankName:    strings.TrimSpace(input.BankName),
		BankAccount: strings.TrimSpace(input.BankAccount),
		Status:      enums.BusinessStatusPending,
	}
	created, err := s.repo.Create(ctx, business)
	if err != nil {
		return nil, err
	}

	// Owners act as sellers from their next login onward.
	if err := s.users.Update(ctx, ownerUserID, map[string]any{"role": enums.UserRoleSeller}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "promote owner to seller")
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	business, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "business not found")
		}
		return nil, err
	}
	return business, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	business, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if isNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "business not found")
		}
		return nil, err
	}
	return business, nil
}

func (s *service) ListApproved(ctx context.Context, params pagination.Params, filters ListFilters) (*BusinessList, error) {
	approved := enums.BusinessStatusApproved
	filters.Status = &approved
	return s.repo.List(ctx, params, filters)
}

func (s *service) Approve(ctx context.Context, id uuid.UUID) error {
	business, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if business.Status == enums.BusinessStatusApproved {
		return nil
	}
	now := s.now().UTC()
	return s.repo.Update(ctx, id, map[string]any{
		"status":      enums.BusinessStatusApproved,
		"approved_at": &now,
	})
}

func (s *service) Reject(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, map[string]any{
		"status": enums.BusinessStatusRejected,
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
