// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// VerifyHandler godoc
// @Summary      Verify an API key
// @Description  Reports whether the supplied key is valid and how much of
// @Description  the daily quota remains. Verification does not count against
// @Description  the quota.
// @Tags         tracking
// @Produce      json
// @Param        X-API-Key  header  string  false  "API key, alternatively passed as the api_key query parameter"
// @Success      200 {object} VerifyResponse  "Key status"
// @Failure      500 {object} ErrorResponse   "Internal server error"
// @Router       /api/verify [get]
func VerifyHandler(c echo.Context) error {
	logger := c.Logger()

	apiKey := apiKeyFromRequest(c)
	key, err := Tracker.Limiter.ValidateKey(apiKey)
	if err != nil {
		logger.Error("Failed to validate API key: ", err)
		return echo.ErrInternalServerError
	}

	if key == nil {
		return c.JSON(http.StatusOK, VerifyResponse{
			Valid: false,
			Limit: Tracker.Limiter.MaxPerDay,
		})
	}

	remaining, err := Tracker.Limiter.Remaining(key.KeyID)
	if err != nil {
		logger.Error("Failed to read remaining quota: ", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, VerifyResponse{
		Valid:     true,
		KeyID:     key.KeyID,
		Name:      key.Name,
		Remaining: remaining,
		Limit:     Tracker.Limiter.MaxPerDay,
	})
}
