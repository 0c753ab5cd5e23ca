package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/server"
	"github.com/fekuna/omnipos-terminal-service/internal/staff"
	"github.com/fekuna/omnipos-terminal-service/internal/staff/dto"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type StaffHandler struct {
	uc     staff.UseCase
	logger logger.ZapLogger
}

func NewStaffHandler(uc staff.UseCase, log logger.ZapLogger) *StaffHandler {
	return &StaffHandler{uc: uc, logger: log}
}

func (h *StaffHandler) Register(g *echo.Group) {
	g.GET("/staff", h.list)
	g.GET("/staff/:id", h.get)
	g.POST("/staff", h.create)
	g.PUT("/staff/:id", h.update)
	g.DELETE("/staff/:id", h.deactivate)
}

func (h *StaffHandler) list(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	items, total, err := h.uc.ListStaff(c.Request().Context(), page, pageSize)
	if err != nil {
		h.logger.Error("failed to list staff", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.Paged(c, items, total, page, pageSize)
}

func (h *StaffHandler) get(c echo.Context) error {
	p, err := h.uc.GetStaff(c.Request().Context(), c.Param("id"))
	if err != nil {
		return server.Fail(c, err)
	}
	if p == nil {
		return server.NotFound(c, "staff profile not found")
	}
	return server.OK(c, p)
}

func (h *StaffHandler) create(c echo.Context) error {
	var input dto.CreateStaffInput
	if err := c.Bind(&input); err != nil {
		return server.BadRequest(c, "unable to parse request")
	}

	p, err := h.uc.CreateStaff(c.Request().Context(), &input)
	if err != nil {
		h.logger.Error("failed to create staff", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.Created(c, p)
}

func (h *StaffHandler) update(c echo.Context) error {
	var input dto.UpdateStaffInput
	if err := c.Bind(&input); err != nil {
		return server.BadRequest(c, "unable to parse request")
	}
	input.ID = c.Param("id")

	p, err := h.uc.UpdateStaff(c.Request().Context(), &input)
	if err != nil {
		h.logger.Error("failed to update staff", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.OK(c, p)
}

func (h *StaffHandler) deactivate(c echo.Context) error {
	if err := h.uc.DeactivateStaff(c.Request().Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to deactivate staff", zap.Error(err))
		return server.Fail(c, err)
	}
	return server.OK(c, map[string]bool{"deactivated": true})
}
