package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/soloapps/user-service/internal/core/ports"
)

// Auth validates the bearer token and resolves its subject back to a live
// identity through the IdentityLoader. A token whose subject no longer
// exists (deleted account) is rejected even while its signature is valid.
func Auth(jwtSecret string, identities ports.IdentityLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			subject, _ := claims["sub"].(string)
			if subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			user, err := identities.LoadIdentity(c.Request().Context(), subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown identity")
			}

			c.Set("username", user.Username)
			c.Set("user_id", user.ID)
			c.Set("role", user.Role)

			return next(c)
		}
	}
}
