package auth

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/server"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type Handler struct {
	svc    *Service
	logger logger.ZapLogger
}

func NewHandler(svc *Service, log logger.ZapLogger) *Handler {
	return &Handler{svc: svc, logger: log}
}

func (h *Handler) Register(g *echo.Group) {
	g.POST("/auth/login", h.login)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return server.BadRequest(c, "unable to parse request")
	}

	token, profile, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("login rejected", zap.String("email", req.Email), zap.Error(err))
		return server.Fail(c, err)
	}

	return server.OK(c, map[string]interface{}{
		"token":   token,
		"profile": profile,
	})
}
