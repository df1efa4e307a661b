package businesses

import (
	"context"

	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/emabi2002/pngsme/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for seller businesses.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, business *models.Business) (*models.Business, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	FindBySlug(ctx context.Context, slug string) (*models.Business, error)
	FindByOwner(ctx context.Context, ownerUserID uuid.UUID) (*models.Business, error)
	List(ctx context.Context, params pagination.Params, filters ListFilters) (*BusinessList, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
}
