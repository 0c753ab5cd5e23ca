package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fekuna/omnipos-terminal-service/internal/location"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type locationUseCase struct {
	repo   location.Repository
	logger logger.ZapLogger
}

func NewLocationUseCase(repo location.Repository, log logger.ZapLogger) location.UseCase {
	return &locationUseCase{repo: repo, logger: log}
}

func (uc *locationUseCase) CreateLocation(ctx context.Context, name, locType string) (*model.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("location name is required")
	}
	if locType == "" {
		locType = model.LocationTypeStore
	}

	now := time.Now()
	loc := &model.Location{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      name,
		Type:      locType,
		IsActive:  true,
	}

	if err := uc.repo.Create(ctx, loc); err != nil {
		return nil, apperrors.Transport(err, "failed to create location")
	}
	return loc, nil
}

func (uc *locationUseCase) GetLocation(ctx context.Context, id string) (*model.Location, error) {
	loc, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load location")
	}
	return loc, nil
}

func (uc *locationUseCase) ListActiveStores(ctx context.Context) ([]model.Location, error) {
	items, err := uc.repo.FindActiveStores(ctx)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to list stores")
	}
	return items, nil
}
