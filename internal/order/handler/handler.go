package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/order"
	"github.com/fekuna/omnipos-terminal-service/internal/order/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/server"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

func (h *OrderHandler) Register(g *echo.Group) {
	g.GET("/orders", h.list)
	g.GET("/orders/:id", h.get)
}

func (h *OrderHandler) list(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filter := &dto.OrderFilter{
		LocationID: c.QueryParam("location_id"),
		Status:     c.QueryParam("status"),
		Page:       page,
		Limit:      limit,
	}

	orders, total, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.Paged(c, orders, total, filter.Page, filter.Limit)
}

func (h *OrderHandler) get(c echo.Context) error {
	ord, err := h.uc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return server.Fail(c, err)
	}
	return server.OK(c, ord)
}
