package order

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/order/dto"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context, filter *dto.OrderFilter) ([]model.Order, int, error)
}
