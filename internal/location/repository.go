package location

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, loc *model.Location) error
	FindByID(ctx context.Context, id string) (*model.Location, error)
	FindActiveStores(ctx context.Context) ([]model.Location, error)
}
