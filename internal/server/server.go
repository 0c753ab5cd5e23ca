package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

// Registrar mounts a handler's routes on a route group.
type Registrar interface {
	Register(g *echo.Group)
}

type Server struct {
	echo   *echo.Echo
	addr   string
	logger logger.ZapLogger
}

// New builds the echo server. Public registrars mount under /api without
// authentication (login); protected ones go behind the auth middleware.
func New(addr string, log logger.ZapLogger, authMW echo.MiddlewareFunc, public, protected []Registrar) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(requestLogger(log))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	for _, r := range public {
		r.Register(api)
	}

	secured := e.Group("/api", authMW)
	for _, r := range protected {
		r.Register(secured)
	}

	return &Server{echo: e, addr: addr, logger: log}
}

func (s *Server) Start() error {
	return s.echo.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func requestLogger(log logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}
