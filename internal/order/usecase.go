package order

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/order/dto"
)

type UseCase interface {
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter *dto.OrderFilter) ([]model.Order, int, error)
}
