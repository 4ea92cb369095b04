package admin

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/verifiedboiy/fanmeetzone/logger"
)

// JWTAuthMiddleware guards the admin route group. It accepts the token from
// the Authorization header or, as a fallback, from ?token= (handy for links
// in notification emails).
func (a *Auth) JWTAuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := ""

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			tokenString = c.QueryParam("token")
			if tokenString != "" {
				logger.Log.Info(fmt.Sprintf("[admin-auth] Using token from query parameter for path: %s", c.Path()))
			}
		}

		if tokenString == "" {
			logger.Log.Warn("[admin-auth] JWT check failed: No token in header or query.")
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization token missing"})
		}

		if err := a.Verify(tokenString); err != nil {
			logger.Log.Warn(fmt.Sprintf("[admin-auth] Invalid or expired JWT: %v", err))
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		return next(c)
	}
}
