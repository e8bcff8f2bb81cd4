// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"lacak-server/events"
	"lacak-server/tracking"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	Tracker   *tracking.Orchestrator
	Publisher *events.Publisher
)

// Init wires the shared pipeline into the handler package. Called once from
// main before routes are registered.
func Init(tracker *tracking.Orchestrator, publisher *events.Publisher) {
	Tracker = tracker
	Publisher = publisher
}

// apiKeyFromRequest reads the caller's key from the X-API-Key header or the
// api_key query parameter, header taking precedence.
func apiKeyFromRequest(c echo.Context) string {
	if key := c.Request().Header.Get("X-API-Key"); key != "" {
		return key
	}
	return c.QueryParam("api_key")
}

// keyIDFrom extracts the stored key identifier from a raw key for logging.
// Unidentifiable keys are logged as anonymous.
func keyIDFrom(rawKey string) string {
	if strings.HasPrefix(rawKey, "pk_") && len(rawKey) >= 35 {
		return rawKey[:35]
	}
	return "anonymous"
}

func newResponseMeta() ResponseMeta {
	return ResponseMeta{
		RequestID:   "req_" + strings.ReplaceAll(uuid.New().String(), "-", ""),
		ProcessedAt: time.Now().Format(time.RFC3339),
	}
}

// trackingErrorJSON renders a pipeline error in the stable error envelope.
func trackingErrorJSON(c echo.Context, err error) error {
	var trackErr *tracking.Error
	if !errors.As(err, &trackErr) {
		trackErr = tracking.ErrInternal(err)
	}
	if trackErr.Kind == tracking.KindInternal {
		c.Logger().Error("Lookup pipeline failure: ", err)
	}
	return c.JSON(trackErr.Code, ErrorResponse{
		Success:   false,
		Error:     trackErr.Message,
		Code:      trackErr.Code,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// ErrorEnvelopeHandler renders every unhandled echo error, including unknown
// endpoints, in the same envelope the pipeline errors use.
func ErrorEnvelopeHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	}
	if code == http.StatusNotFound {
		message = "Endpoint not found"
	}

	if jsonErr := c.JSON(code, ErrorResponse{
		Success:   false,
		Error:     message,
		Code:      code,
		Timestamp: time.Now().Format(time.RFC3339),
	}); jsonErr != nil {
		c.Logger().Error("Failed to render error response: ", jsonErr)
	}
}
