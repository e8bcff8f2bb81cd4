// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"lacak-server/commons"
	"lacak-server/db"
	"lacak-server/models"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// VerifyAdminMiddleware guards the management endpoints. It expects a Bearer
// token minted by the admin login handler and loads the matching user into
// the request context under "admin_user".
func VerifyAdminMiddleware() func(echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := c.Logger()

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.Error("Authorization header missing or invalid.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Bearer token is required",
				}
			}
			adminToken := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(adminToken, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(commons.GetEnv("JWT_SECRET", "default_very_secret_key")), nil
			})
			if err != nil || !token.Valid {
				logger.Error("JWT failed to parse or is invalid: ", err)
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired admin token, please login again",
				}
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				logger.Error("Failed to parse JWT claims.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Invalid admin token, please login again",
				}
			}

			userID := claims["uid"]
			user := models.User{}
			if err := db.Conn.Where("id = ?", userID).First(&user).Error; err != nil {
				logger.Error("Admin user not found for token.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired admin token, please login again",
				}
			}

			c.Set("admin_user", user)
			return next(c)
		}
	}
}

// GetAdminUser returns the authenticated admin from the request context.
func GetAdminUser(c echo.Context) (*models.User, error) {
	if user, ok := c.Get("admin_user").(models.User); ok {
		return &user, nil
	}
	return nil, errors.New("no authenticated admin found")
}
