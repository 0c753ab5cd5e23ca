package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/product"
	"github.com/fekuna/omnipos-terminal-service/internal/product/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/server"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: log}
}

func (h *ProductHandler) Register(g *echo.Group) {
	g.GET("/products", h.list)
	g.GET("/products/grid", h.terminalGrid)
	g.GET("/products/scan/:sku", h.scan)
	g.GET("/products/:id", h.get)
	g.POST("/products", h.create)
	g.PUT("/products/:id", h.update)
	g.DELETE("/products/:id", h.delete)
}

func (h *ProductHandler) list(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	var isActive *bool
	if v := c.QueryParam("is_active"); v != "" {
		b := v == "true"
		isActive = &b
	}

	filters := &dto.ProductFilters{
		SearchQuery: c.QueryParam("q"),
		IsActive:    isActive,
		SortBy:      c.QueryParam("sort"),
		SortOrder:   c.QueryParam("order"),
		Page:        page,
		PageSize:    pageSize,
	}

	items, total, err := h.uc.ListProducts(c.Request().Context(), filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.Paged(c, items, total, page, pageSize)
}

// terminalGrid returns the POS grid: active products with their inventory
// rows for the caller's location.
func (h *ProductHandler) terminalGrid(c echo.Context) error {
	locationID := c.QueryParam("location_id")
	items, err := h.uc.ListForTerminal(c.Request().Context(), locationID)
	if err != nil {
		return server.Fail(c, err)
	}
	return server.OK(c, items)
}

func (h *ProductHandler) scan(c echo.Context) error {
	p, err := h.uc.GetBySKU(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return server.Fail(c, err)
	}
	if p == nil {
		return server.NotFound(c, "product not found: "+c.Param("sku"))
	}
	return server.OK(c, p)
}

func (h *ProductHandler) get(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return server.Fail(c, err)
	}
	if p == nil {
		return server.NotFound(c, "product not found")
	}
	return server.OK(c, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var input dto.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return server.BadRequest(c, "unable to parse request")
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.Created(c, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	var input dto.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return server.BadRequest(c, "unable to parse request")
	}
	input.ID = c.Param("id")

	p, err := h.uc.UpdateProduct(c.Request().Context(), &input)
	if err != nil {
		h.logger.Error("failed to update product", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.OK(c, p)
}

func (h *ProductHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete product", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.OK(c, map[string]bool{"deleted": true})
}
