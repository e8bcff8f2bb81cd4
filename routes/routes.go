// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"lacak-server/commons"
	"lacak-server/handlers"
	"lacak-server/middlewares"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering API routes")
	api := e.Group("/api")
	api.POST("/track", handlers.TrackHandler)
	api.POST("/batch-track", handlers.BatchTrackHandler)
	api.GET("/verify", handlers.VerifyHandler)
	api.POST("/admin/login", handlers.LoginHandler)
	api.GET("/stats", handlers.StatsHandler, middlewares.VerifyAdminMiddleware())
	api.GET("/admin/blacklist", handlers.GetBlacklistHandler, middlewares.VerifyAdminMiddleware())
	api.POST("/admin/blacklist", handlers.AddBlacklistEntryHandler, middlewares.VerifyAdminMiddleware())
	api.DELETE("/admin/blacklist/:eid", handlers.DeleteBlacklistEntryHandler, middlewares.VerifyAdminMiddleware())
	api.POST("/admin/api-keys", handlers.CreateAPIKeyHandler, middlewares.VerifyAdminMiddleware())
	api.GET("/admin/api-keys", handlers.GetAllAPIKeysHandler, middlewares.VerifyAdminMiddleware())
	api.DELETE("/admin/api-keys/:key_id", handlers.DeleteAPIKeyHandler, middlewares.VerifyAdminMiddleware())
	commons.Logger.Info("API routes registered successfully")
}
