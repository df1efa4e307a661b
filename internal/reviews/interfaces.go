package reviews

import (
	"context"

	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/emabi2002/pngsme/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for product reviews.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	FindByOrderAndProduct(ctx context.Context, reviewerUserID, orderID, productID uuid.UUID) (*models.Review, error)
	ListApprovedForProduct(ctx context.Context, productID uuid.UUID, params pagination.Params) (*ReviewList, error)
}
