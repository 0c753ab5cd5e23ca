package usecase

import (
	"context"
	"strconv"
	"sync"

	"github.com/spf13/cast"

	"github.com/fekuna/omnipos-terminal-service/config"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/settings"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type settingsUseCase struct {
	repo     settings.Repository
	defaults config.TerminalConfig
	logger   logger.ZapLogger

	mu        sync.RWMutex
	snapshots map[string]settings.Settings
}

func NewSettingsUseCase(repo settings.Repository, defaults config.TerminalConfig, log logger.ZapLogger) settings.UseCase {
	return &settingsUseCase{
		repo:      repo,
		defaults:  defaults,
		logger:    log,
		snapshots: map[string]settings.Settings{},
	}
}

func (uc *settingsUseCase) Get(ctx context.Context, terminal string) (settings.Settings, error) {
	if terminal == "" {
		return settings.Settings{}, apperrors.Validation("terminal identifier is required")
	}

	uc.mu.RLock()
	if s, ok := uc.snapshots[terminal]; ok {
		uc.mu.RUnlock()
		return s, nil
	}
	uc.mu.RUnlock()

	values, err := uc.repo.GetAll(ctx, terminal)
	if err != nil {
		return settings.Settings{}, apperrors.Transport(err, "failed to load terminal settings")
	}

	s := uc.fromValues(values)

	uc.mu.Lock()
	uc.snapshots[terminal] = s
	uc.mu.Unlock()

	return s, nil
}

func (uc *settingsUseCase) Save(ctx context.Context, terminal string, s settings.Settings) error {
	if terminal == "" {
		return apperrors.Validation("terminal identifier is required")
	}
	if s.TaxRate < 0 || s.TaxRate > 100 {
		return apperrors.Validation("tax rate must be between 0 and 100")
	}

	values := map[string]string{
		model.SettingTaxRate:       strconv.FormatFloat(s.TaxRate, 'f', -1, 64),
		model.SettingPrintReceipts: strconv.FormatBool(s.PrintReceipts),
		model.SettingTerminalName:  s.TerminalName,
		model.SettingLocationID:    s.LocationID,
	}

	if err := uc.repo.Save(ctx, terminal, values); err != nil {
		return apperrors.Transport(err, "failed to save terminal settings")
	}

	uc.mu.Lock()
	uc.snapshots[terminal] = s
	uc.mu.Unlock()

	return nil
}

func (uc *settingsUseCase) Reload(terminal string) {
	uc.mu.Lock()
	delete(uc.snapshots, terminal)
	uc.mu.Unlock()
}

func (uc *settingsUseCase) fromValues(values map[string]string) settings.Settings {
	s := settings.Settings{
		TaxRate:       uc.defaults.DefaultTaxRate,
		PrintReceipts: uc.defaults.DefaultPrintReceipts,
		TerminalName:  uc.defaults.DefaultName,
	}

	if v, ok := values[model.SettingTaxRate]; ok {
		s.TaxRate = cast.ToFloat64(v)
	}
	if v, ok := values[model.SettingPrintReceipts]; ok {
		// Anything but an explicit "false" keeps printing on.
		s.PrintReceipts = v != "false"
	}
	if v, ok := values[model.SettingTerminalName]; ok && v != "" {
		s.TerminalName = v
	}
	if v, ok := values[model.SettingLocationID]; ok {
		s.LocationID = v
	}

	return s
}
