// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"lacak-server/db"
	"lacak-server/models"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// StatsHandler godoc
// @Summary      Service usage statistics
// @Description  Aggregate counters for the admin dashboard.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token from admin login"
// @Success      200 {object} StatsResponse  "Usage statistics"
// @Failure      401 {object} ErrorResponse  "Unauthorized"
// @Failure      500 {object} ErrorResponse  "Internal server error"
// @Router       /api/stats [get]
func StatsHandler(c echo.Context) error {
	logger := c.Logger()

	var stats StatsResponse
	startOfDay := time.Now().Truncate(24 * time.Hour)

	if err := db.Conn.Model(&models.TrackingLog{}).Count(&stats.TotalTracked).Error; err != nil {
		logger.Error("Failed to count tracking logs: ", err)
		return echo.ErrInternalServerError
	}
	if err := db.Conn.Model(&models.TrackingLog{}).
		Where("created_at >= ?", startOfDay).
		Count(&stats.TrackedToday).Error; err != nil {
		logger.Error("Failed to count today's tracking logs: ", err)
		return echo.ErrInternalServerError
	}
	if err := db.Conn.Model(&models.BlacklistEntry{}).Count(&stats.BlacklistSize).Error; err != nil {
		logger.Error("Failed to count blacklist entries: ", err)
		return echo.ErrInternalServerError
	}
	if err := db.Conn.Model(&models.TrackingLog{}).
		Where("created_at >= ?", startOfDay).
		Distinct("key_id").
		Count(&stats.ActiveKeysToday).Error; err != nil {
		logger.Error("Failed to count active keys: ", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, stats)
}
