package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/staff"
	"github.com/fekuna/omnipos-terminal-service/internal/staff/dto"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type staffUseCase struct {
	repo   staff.Repository
	logger logger.ZapLogger
}

func NewStaffUseCase(repo staff.Repository, log logger.ZapLogger) staff.UseCase {
	return &staffUseCase{repo: repo, logger: log}
}

func (uc *staffUseCase) CreateStaff(ctx context.Context, input *dto.CreateStaffInput) (*model.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.FullName == "" {
		return nil, apperrors.Validation("email and full name are required")
	}
	if len(input.Password) < 8 {
		return nil, apperrors.Validation("password must be at least 8 characters")
	}

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to check email")
	}
	if existing != nil {
		return nil, apperrors.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = model.RoleCashier
	}

	var locationID *string
	if input.AssignedLocationID != "" {
		l := input.AssignedLocationID
		locationID = &l
	}

	now := time.Now()
	p := &model.Profile{
		BaseModel:          model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Email:              email,
		FullName:           input.FullName,
		Role:               role,
		AssignedLocationID: locationID,
		PasswordHash:       string(hash),
		IsActive:           true,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, apperrors.Transport(err, "failed to create staff profile")
	}
	return p, nil
}

func (uc *staffUseCase) GetStaff(ctx context.Context, id string) (*model.Profile, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load staff profile")
	}
	return p, nil
}

func (uc *staffUseCase) ListStaff(ctx context.Context, page, pageSize int) ([]model.Profile, int, error) {
	return uc.repo.FindAll(ctx, page, pageSize)
}

func (uc *staffUseCase) UpdateStaff(ctx context.Context, input *dto.UpdateStaffInput) (*model.Profile, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load staff profile")
	}
	if p == nil {
		return nil, apperrors.Validation("staff profile not found")
	}

	p.FullName = input.FullName
	p.Role = input.Role
	p.IsActive = input.IsActive
	if input.AssignedLocationID != "" {
		l := input.AssignedLocationID
		p.AssignedLocationID = &l
	} else {
		p.AssignedLocationID = nil
	}
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, apperrors.Transport(err, "failed to update staff profile")
	}
	return p, nil
}

func (uc *staffUseCase) DeactivateStaff(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperrors.Transport(err, "failed to load staff profile")
	}
	if p == nil {
		return nil // Already gone
	}

	p.IsActive = false
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return apperrors.Transport(err, "failed to deactivate staff profile")
	}
	return nil
}
