// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"lacak-server/tracking"
	"net/http"

	"github.com/labstack/echo/v4"
)

const maxBatchSize = 10

// BatchTrackHandler godoc
// @Summary      Look up multiple phone numbers
// @Description  Runs up to 10 numbers through the lookup pipeline in one
// @Description  call. Each number succeeds or fails independently; every
// @Description  successful lookup counts against the key's daily quota.
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        X-API-Key  header  string  false  "API key, alternatively passed as the api_key query parameter"
// @Param        batchTrackRequest  body  BatchTrackRequest  true  "Batch track request payload"
// @Success      200 {object} BatchTrackResponse  "Per-number outcomes"
// @Failure      400 {object} ErrorResponse  "Missing or oversized phones array"
// @Failure      500 {object} ErrorResponse  "Internal server error"
// @Router       /api/batch-track [post]
func BatchTrackHandler(c echo.Context) error {
	logger := c.Logger()

	var req BatchTrackRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid batch track request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}
	if len(req.Phones) == 0 {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "phones field must be a non-empty array",
		}
	}
	if len(req.Phones) > maxBatchSize {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "phones field must contain at most 10 numbers",
		}
	}

	apiKey := apiKeyFromRequest(c)
	keyID := keyIDFrom(apiKey)

	items := make([]BatchTrackItem, 0, len(req.Phones))
	for _, phone := range req.Phones {
		result, err := Tracker.Track(c.Request().Context(), phone, apiKey)
		if err != nil {
			var trackErr *tracking.Error
			if !errors.As(err, &trackErr) {
				trackErr = tracking.ErrInternal(err)
			}
			if trackErr.Kind == tracking.KindInternal {
				logger.Error("Lookup pipeline failure: ", err)
			}
			items = append(items, BatchTrackItem{
				Phone:   phone,
				Success: false,
				Error:   trackErr.Message,
				Code:    trackErr.Code,
			})
			continue
		}

		recordLookup(c, keyID, result)
		items = append(items, BatchTrackItem{
			Phone:   phone,
			Success: true,
			Data:    result,
		})
	}

	return c.JSON(http.StatusOK, BatchTrackResponse{
		Success: true,
		Data:    items,
		Meta:    newResponseMeta(),
	})
}
