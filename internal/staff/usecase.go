package staff

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/staff/dto"
)

type UseCase interface {
	CreateStaff(ctx context.Context, input *dto.CreateStaffInput) (*model.Profile, error)
	GetStaff(ctx context.Context, id string) (*model.Profile, error)
	ListStaff(ctx context.Context, page, pageSize int) ([]model.Profile, int, error)
	UpdateStaff(ctx context.Context, input *dto.UpdateStaffInput) (*model.Profile, error)
	DeactivateStaff(ctx context.Context, id string) error
}
