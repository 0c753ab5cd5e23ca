package location

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
)

type UseCase interface {
	CreateLocation(ctx context.Context, name, locType string) (*model.Location, error)
	GetLocation(ctx context.Context, id string) (*model.Location, error)
	ListActiveStores(ctx context.Context) ([]model.Location, error)
}
