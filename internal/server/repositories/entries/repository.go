package entries

import (
	"context"

	"github.com/dmitrijs2005/droply/internal/server/models"
)

// Repository is the metadata store for folder/file entries. Every method is
// scoped by owner; a lookup or mutation that matches no row returns
// common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	GetByID(ctx context.Context, id, userID string) (*models.Entry, error)
	GetOwnedFolder(ctx context.Context, id, userID string) (*models.Entry, error)
	List(ctx context.Context, userID string, parentID *string) ([]*models.Entry, error)
	ToggleStarred(ctx context.Context, id, userID string) (*models.Entry, error)
	ToggleTrash(ctx context.Context, id, userID string) (*models.Entry, error)
	Delete(ctx context.Context, id, userID string) (*models.Entry, error)
	SelectTrashed(ctx context.Context, userID string) ([]*models.Entry, error)
	DeleteTrashed(ctx context.Context, userID string) (int64, error)
}
