package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/location"
	"github.com/fekuna/omnipos-terminal-service/internal/server"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type LocationHandler struct {
	uc     location.UseCase
	logger logger.ZapLogger
}

func NewLocationHandler(uc location.UseCase, log logger.ZapLogger) *LocationHandler {
	return &LocationHandler{uc: uc, logger: log}
}

func (h *LocationHandler) Register(g *echo.Group) {
	g.GET("/locations", h.listStores)
	g.GET("/locations/:id", h.get)
	g.POST("/locations", h.create)
}

func (h *LocationHandler) listStores(c echo.Context) error {
	items, err := h.uc.ListActiveStores(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list stores", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.OK(c, items)
}

func (h *LocationHandler) get(c echo.Context) error {
	loc, err := h.uc.GetLocation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return server.Fail(c, err)
	}
	if loc == nil {
		return server.NotFound(c, "location not found")
	}
	return server.OK(c, loc)
}

type createLocationRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (h *LocationHandler) create(c echo.Context) error {
	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return server.BadRequest(c, "unable to parse request")
	}

	loc, err := h.uc.CreateLocation(c.Request().Context(), req.Name, req.Type)
	if err != nil {
		h.logger.Error("failed to create location", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.Created(c, loc)
}
