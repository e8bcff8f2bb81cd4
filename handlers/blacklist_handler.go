// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"lacak-server/db"
	"lacak-server/models"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// GetBlacklistHandler godoc
// @Summary      List blacklisted numbers
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token from admin login"
// @Success      200 {object} BlacklistListResponse  "Blacklist retrieved"
// @Failure      401 {object} ErrorResponse  "Unauthorized"
// @Failure      500 {object} ErrorResponse  "Internal server error"
// @Router       /api/admin/blacklist [get]
func GetBlacklistHandler(c echo.Context) error {
	logger := c.Logger()

	var entries []models.BlacklistEntry
	if err := db.Conn.Order("reported_at DESC").Find(&entries).Error; err != nil {
		logger.Errorf("Failed to list blacklist entries: %v", err)
		return echo.ErrInternalServerError
	}

	details := make([]BlacklistEntryDetails, 0, len(entries))
	for _, entry := range entries {
		details = append(details, BlacklistEntryDetails{
			EID:         entry.EID.String(),
			PhoneNumber: entry.PhoneNumber,
			Reason:      entry.Reason,
			ReportedAt:  entry.ReportedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, BlacklistListResponse{
		Data:    details,
		Message: "Blacklist retrieved successfully",
	})
}

// AddBlacklistEntryHandler godoc
// @Summary      Blacklist a number
// @Description  Normalizes the submitted number and flags it. Subsequent
// @Description  lookups for it are rejected before any processing.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token from admin login"
// @Param        blacklistEntryRequest  body  BlacklistEntryRequest  true  "Blacklist entry payload"
// @Success      201 {object} BlacklistEntryDetails  "Entry created"
// @Failure      400 {object} ErrorResponse  "Invalid phone number format"
// @Failure      401 {object} ErrorResponse  "Unauthorized"
// @Failure      409 {object} ErrorResponse  "Number already blacklisted"
// @Failure      500 {object} ErrorResponse  "Internal server error"
// @Router       /api/admin/blacklist [post]
func AddBlacklistEntryHandler(c echo.Context) error {
	logger := c.Logger()

	var req BlacklistEntryRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid blacklist entry payload:", err)
		return echo.ErrBadRequest
	}
	if req.Phone == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "phone field is required",
		}
	}

	p, err := Tracker.Validator.Normalize(req.Phone)
	if err != nil {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid phone number format",
		}
	}

	var existing models.BlacklistEntry
	err = db.Conn.Where("phone_number = ?", p.Canonical()).First(&existing).Error
	if err == nil {
		return &echo.HTTPError{
			Code:    http.StatusConflict,
			Message: "Number is already blacklisted",
		}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Errorf("Failed to check blacklist: %v", err)
		return echo.ErrInternalServerError
	}

	entry := models.BlacklistEntry{
		PhoneNumber: p.Canonical(),
		Reason:      req.Reason,
	}
	if err := db.Conn.Create(&entry).Error; err != nil {
		logger.Errorf("Failed to create blacklist entry: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusCreated, BlacklistEntryDetails{
		EID:         entry.EID.String(),
		PhoneNumber: entry.PhoneNumber,
		Reason:      entry.Reason,
		ReportedAt:  entry.ReportedAt.Format(time.RFC3339),
	})
}

// DeleteBlacklistEntryHandler godoc
// @Summary      Remove a blacklist entry
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token from admin login"
// @Param        eid  path  string  true  "Entry ID to remove"
// @Success      200 {object} GenericResponse  "Entry removed"
// @Failure      401 {object} ErrorResponse  "Unauthorized"
// @Failure      404 {object} ErrorResponse  "Entry not found"
// @Failure      500 {object} ErrorResponse  "Internal server error"
// @Router       /api/admin/blacklist/{eid} [delete]
func DeleteBlacklistEntryHandler(c echo.Context) error {
	logger := c.Logger()
	eid := c.Param("eid")

	entry := models.BlacklistEntry{}
	err := db.Conn.Where("eid = ?", eid).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "Blacklist entry not found",
		}
	}
	if err != nil {
		logger.Errorf("Failed to find blacklist entry: %v", err)
		return echo.ErrInternalServerError
	}

	if err := db.Conn.Delete(&entry).Error; err != nil {
		logger.Errorf("Failed to delete blacklist entry: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, GenericResponse{
		Message: "Blacklist entry removed successfully",
	})
}
