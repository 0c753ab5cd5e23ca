package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/auth"
	"github.com/fekuna/omnipos-terminal-service/internal/checkout"
	"github.com/fekuna/omnipos-terminal-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/server"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type CheckoutHandler struct {
	uc     checkout.UseCase
	logger logger.ZapLogger
}

func NewCheckoutHandler(uc checkout.UseCase, log logger.ZapLogger) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, logger: log}
}

func (h *CheckoutHandler) Register(g *echo.Group) {
	g.POST("/terminals/:terminal/checkout", h.submit)
}

type submitRequest struct {
	PaymentMethod string `json:"payment_method"`
}

func (h *CheckoutHandler) submit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return server.BadRequest(c, "unable to parse request")
	}

	op, ok := auth.OperatorFrom(c.Request().Context())
	if !ok {
		return server.Unauthorized(c, "missing operator")
	}

	result, err := h.uc.Submit(c.Request().Context(), &dto.SubmitInput{
		Terminal:      c.Param("terminal"),
		PaymentMethod: req.PaymentMethod,
		Operator:      op,
	})
	if err != nil {
		h.logger.Debug("checkout rejected", zap.String("terminal", c.Param("terminal")), zap.Error(err))
		return server.Fail(c, err)
	}
	return server.Created(c, result)
}
