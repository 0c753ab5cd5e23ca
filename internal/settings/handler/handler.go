package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/server"
	"github.com/fekuna/omnipos-terminal-service/internal/settings"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type SettingsHandler struct {
	uc     settings.UseCase
	logger logger.ZapLogger
}

func NewSettingsHandler(uc settings.UseCase, log logger.ZapLogger) *SettingsHandler {
	return &SettingsHandler{uc: uc, logger: log}
}

func (h *SettingsHandler) Register(g *echo.Group) {
	g.GET("/terminals/:terminal/settings", h.get)
	g.PUT("/terminals/:terminal/settings", h.save)
	g.POST("/terminals/:terminal/settings/reload", h.reload)
}

func (h *SettingsHandler) get(c echo.Context) error {
	s, err := h.uc.Get(c.Request().Context(), c.Param("terminal"))
	if err != nil {
		h.logger.Error("failed to load settings", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.OK(c, s)
}

func (h *SettingsHandler) save(c echo.Context) error {
	var s settings.Settings
	if err := c.Bind(&s); err != nil {
		return server.BadRequest(c, "unable to parse request")
	}

	if err := h.uc.Save(c.Request().Context(), c.Param("terminal"), s); err != nil {
		h.logger.Error("failed to save settings", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.OK(c, s)
}

func (h *SettingsHandler) reload(c echo.Context) error {
	h.uc.Reload(c.Param("terminal"))
	return server.OK(c, map[string]bool{"reloaded": true})
}
