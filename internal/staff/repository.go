package staff

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, p *model.Profile) error
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	FindAll(ctx context.Context, page, pageSize int) ([]model.Profile, int, error)
	Update(ctx context.Context, p *model.Profile) error
}
