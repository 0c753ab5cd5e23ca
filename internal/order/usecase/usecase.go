package usecase

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/order"
	"github.com/fekuna/omnipos-terminal-service/internal/order/dto"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type orderUseCase struct {
	repo   order.Repository
	logger logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{repo: repo, logger: log}
}

func (uc *orderUseCase) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if id == "" {
		return nil, apperrors.Validation("order id is required")
	}
	ord, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, apperrors.Validation("order %s not found", id)
	}
	return ord, nil
}

func (uc *orderUseCase) List(ctx context.Context, filter *dto.OrderFilter) ([]model.Order, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	return uc.repo.FindAll(ctx, filter)
}
