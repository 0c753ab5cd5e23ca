package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/auth"
	"github.com/fekuna/omnipos-terminal-service/internal/inventory"
	"github.com/fekuna/omnipos-terminal-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/server"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

func (h *InventoryHandler) Register(g *echo.Group) {
	g.GET("/inventory", h.list)
	g.GET("/inventory/product/:productID", h.byProduct)
	g.POST("/inventory/adjust", h.adjust)
	g.GET("/inventory/movements", h.movements)
}

func (h *InventoryHandler) list(c echo.Context) error {
	page, pageSize := pagination(c)
	filters := &dto.InventoryFilters{
		ProductID:  c.QueryParam("product_id"),
		LocationID: c.QueryParam("location_id"),
		Page:       page,
		PageSize:   pageSize,
	}

	items, total, err := h.uc.ListInventory(c.Request().Context(), filters)
	if err != nil {
		h.logger.Error("failed to list inventory", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.Paged(c, items, total, page, pageSize)
}

func (h *InventoryHandler) byProduct(c echo.Context) error {
	items, err := h.uc.GetProductInventory(c.Request().Context(), c.Param("productID"), c.QueryParam("location_id"))
	if err != nil {
		return server.Fail(c, err)
	}
	return server.OK(c, items)
}

type adjustRequest struct {
	ProductID      string   `json:"product_id"`
	LocationID     string   `json:"location_id"`
	SizeName       *string  `json:"size_name"`
	QuantityChange int      `json:"quantity_change"`
	Price          *float64 `json:"price"`
	Reason         string   `json:"reason"`
}

func (h *InventoryHandler) adjust(c echo.Context) error {
	var req adjustRequest
	if err := c.Bind(&req); err != nil {
		return server.BadRequest(c, "unable to parse request")
	}

	userID := ""
	if op, ok := auth.OperatorFrom(c.Request().Context()); ok {
		userID = op.ID
	}

	inv, err := h.uc.AdjustInventory(c.Request().Context(), &dto.AdjustInventoryInput{
		ProductID:      req.ProductID,
		LocationID:     req.LocationID,
		SizeName:       req.SizeName,
		QuantityChange: req.QuantityChange,
		Price:          req.Price,
		Reason:         req.Reason,
		ReferenceType:  "manual_adjustment",
		UserID:         userID,
	})
	if err != nil {
		h.logger.Error("failed to adjust inventory", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.OK(c, inv)
}

func (h *InventoryHandler) movements(c echo.Context) error {
	page, pageSize := pagination(c)
	filters := &dto.MovementFilters{
		ProductID:    c.QueryParam("product_id"),
		LocationID:   c.QueryParam("location_id"),
		MovementType: c.QueryParam("movement_type"),
		Page:         page,
		PageSize:     pageSize,
	}

	items, total, err := h.uc.ListMovements(c.Request().Context(), filters)
	if err != nil {
		h.logger.Error("failed to list movements", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.Paged(c, items, total, page, pageSize)
}

func pagination(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	return page, pageSize
}
