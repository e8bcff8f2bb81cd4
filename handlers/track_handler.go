// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"lacak-server/db"
	"lacak-server/events"
	"lacak-server/models"
	"lacak-server/tracking"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// TrackHandler godoc
// @Summary      Look up a phone number
// @Description  Normalizes the submitted number, resolves operator and area
// @Description  metadata, checks the blacklist and returns the enriched
// @Description  descriptor. Successful lookups count against the key's daily
// @Description  quota.
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        X-API-Key  header  string  false  "API key, alternatively passed as the api_key query parameter"
// @Param        trackRequest  body  TrackRequest  true  "Track request payload"
// @Success      200 {object} TrackResponse  "Lookup result"
// @Failure      400 {object} ErrorResponse  "Invalid phone number format"
// @Failure      401 {object} ErrorResponse  "Invalid or missing API key"
// @Failure      403 {object} ErrorResponse  "Number is blacklisted"
// @Failure      429 {object} ErrorResponse  "Daily quota exhausted"
// @Failure      500 {object} ErrorResponse  "Internal server error"
// @Router       /api/track [post]
func TrackHandler(c echo.Context) error {
	logger := c.Logger()

	var req TrackRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid track request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}
	if req.Phone == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "phone field is required",
		}
	}

	apiKey := apiKeyFromRequest(c)
	result, err := Tracker.Track(c.Request().Context(), req.Phone, apiKey)
	if err != nil {
		return trackingErrorJSON(c, err)
	}

	recordLookup(c, keyIDFrom(apiKey), result)

	return c.JSON(http.StatusOK, TrackResponse{
		Success: true,
		Data:    result,
		Meta:    newResponseMeta(),
	})
}

// recordLookup persists the audit row and fans the event out to the broker.
// Both are best-effort; the caller already has their result.
func recordLookup(c echo.Context, keyID string, result *tracking.LookupResult) {
	ip := c.RealIP()
	ua := c.Request().UserAgent()

	logEntry := models.TrackingLog{
		PhoneNumber:     result.Phone.E164,
		FormattedNumber: result.Phone.Local,
		Operator:        &result.Operator.Name,
		KeyID:           keyID,
		Cached:          result.Meta.Cached,
		Success:         true,
	}
	if ip != "" {
		logEntry.RequestIP = &ip
	}
	if ua != "" {
		logEntry.UserAgent = &ua
	}
	if err := db.Conn.Create(&logEntry).Error; err != nil {
		c.Logger().Error("Failed to persist tracking log: ", err)
	}

	go Publisher.Publish(events.TrackingEvent{
		PhoneNumber:     result.Phone.E164,
		FormattedNumber: result.Phone.Local,
		Operator:        result.Operator.Name,
		City:            result.Location.City,
		KeyID:           keyID,
		Cached:          result.Meta.Cached,
		ConfidenceScore: result.Status.ConfidenceScore,
		TrackedAt:       time.Now().Format(time.RFC3339),
	})
}
