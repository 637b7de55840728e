package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const callerContextKey = "caller"

// Caller is the authenticated identity handed to every protected handler.
// Handlers and services never query identity state themselves.
type Caller struct {
	ID   string
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == "admin"
}

// AuthRequired validates the bearer token and stores the resulting Caller in
// the request context. The identity provider puts the role either directly in
// the token or under a metadata claim; the first source that yields a value
// wins.
func AuthRequired(jwtSecret string) echo.MiddlewareFunc {
	secret := []byte(jwtSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusForbidden, "Unauthenticated")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusForbidden, "Unauthenticated")
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusForbidden, "Unauthenticated")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Unauthenticated")
			}

			userID, _ := claims["sub"].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusForbidden, "Unauthenticated")
			}

			c.Set(callerContextKey, Caller{
				ID:   userID,
				Role: resolveRole(claims),
			})

			return next(c)
		}
	}
}

// RequireAdmin guards admin-only routes; it must run after AuthRequired.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := CallerFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Unauthenticated")
			}
			if !caller.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden,
					fmt.Sprintf("Unauthorized - Admin access required (Role: %s)", roleOrUndefined(caller.Role)))
			}

			return next(c)
		}
	}
}

func CallerFromContext(c echo.Context) (Caller, bool) {
	caller, ok := c.Get(callerContextKey).(Caller)
	return caller, ok
}

// resolveRole checks the top-level role claim first, then the metadata claim.
func resolveRole(claims jwt.MapClaims) string {
	if role, ok := claims["role"].(string); ok && role != "" {
		return role
	}

	if metadata, ok := claims["metadata"].(map[string]interface{}); ok {
		if role, ok := metadata["role"].(string); ok {
			return role
		}
	}

	return ""
}

func roleOrUndefined(role string) string {
	if role == "" {
		return "undefined"
	}
	return role
}
