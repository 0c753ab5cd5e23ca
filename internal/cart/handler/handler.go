package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/cart"
	"github.com/fekuna/omnipos-terminal-service/internal/server"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type CartHandler struct {
	uc     cart.UseCase
	logger logger.ZapLogger
}

func NewCartHandler(uc cart.UseCase, log logger.ZapLogger) *CartHandler {
	return &CartHandler{uc: uc, logger: log}
}

func (h *CartHandler) Register(g *echo.Group) {
	g.GET("/terminals/:terminal/cart", h.get)
	g.POST("/terminals/:terminal/cart/lines", h.addLine)
	g.PATCH("/terminals/:terminal/cart/lines/:productID", h.updateLine)
	g.DELETE("/terminals/:terminal/cart/lines/:productID", h.removeLine)
	g.DELETE("/terminals/:terminal/cart", h.clear)
}

func (h *CartHandler) get(c echo.Context) error {
	crt, err := h.uc.GetCart(c.Request().Context(), c.Param("terminal"))
	if err != nil {
		return server.Fail(c, err)
	}
	return server.OK(c, crt)
}

type addLineRequest struct {
	ProductID  string `json:"product_id"`
	SKU        string `json:"sku"`
	LocationID string `json:"location_id"`
}

func (h *CartHandler) addLine(c echo.Context) error {
	var req addLineRequest
	if err := c.Bind(&req); err != nil {
		return server.BadRequest(c, "unable to parse request")
	}

	terminal := c.Param("terminal")
	ctx := c.Request().Context()

	var (
		crt *cart.Cart
		err error
	)
	switch {
	case req.ProductID != "":
		crt, err = h.uc.AddProduct(ctx, terminal, req.ProductID, req.LocationID)
	case req.SKU != "":
		crt, err = h.uc.AddBySKU(ctx, terminal, req.SKU, req.LocationID)
	default:
		return server.BadRequest(c, "product_id or sku is required")
	}
	if err != nil {
		h.logger.Debug("failed to add cart line", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.OK(c, crt)
}

type updateLineRequest struct {
	Qty  *int    `json:"qty"`
	Size *string `json:"size"`
}

func (h *CartHandler) updateLine(c echo.Context) error {
	var req updateLineRequest
	if err := c.Bind(&req); err != nil {
		return server.BadRequest(c, "unable to parse request")
	}

	terminal := c.Param("terminal")
	productID := c.Param("productID")
	ctx := c.Request().Context()

	var (
		crt *cart.Cart
		err error
	)
	if req.Qty != nil {
		crt, err = h.uc.UpdateQuantity(ctx, terminal, productID, *req.Qty)
		if err != nil {
			return server.Fail(c, err)
		}
	}
	if req.Size != nil {
		crt, err = h.uc.SelectSize(ctx, terminal, productID, *req.Size)
		if err != nil {
			return server.Fail(c, err)
		}
	}
	if crt == nil {
		return server.BadRequest(c, "qty or size is required")
	}
	return server.OK(c, crt)
}

func (h *CartHandler) removeLine(c echo.Context) error {
	crt, err := h.uc.RemoveProduct(c.Request().Context(), c.Param("terminal"), c.Param("productID"))
	if err != nil {
		return server.Fail(c, err)
	}
	return server.OK(c, crt)
}

func (h *CartHandler) clear(c echo.Context) error {
	if err := h.uc.ClearCart(c.Request().Context(), c.Param("terminal")); err != nil {
		return server.Fail(c, err)
	}
	return server.OK(c, map[string]bool{"cleared": true})
}
