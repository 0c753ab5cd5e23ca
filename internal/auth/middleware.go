package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

// Middleware validates the Bearer token and injects the Operator into the
// request context. Components downstream receive the operator as an explicit
// argument; nothing reads claims out of raw context values.
func Middleware(secret string, log logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if tokenStr == "" || tokenStr == header {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := ParseToken(secret, tokenStr)
			if err != nil {
				log.Debug("token rejected", zap.Error(err))
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			op := Operator{
				ID:         claims.Subject,
				Name:       claims.FullName,
				Role:       claims.Role,
				LocationID: claims.LocationID,
			}

			req := c.Request()
			c.SetRequest(req.WithContext(WithOperator(req.Context(), op)))
			return next(c)
		}
	}
}
