// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"lacak-server/crypto"
	"lacak-server/db"
	"lacak-server/models"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CreateAPIKeyHandler godoc
// @Summary      Create an API key
// @Description  Mints a new lookup API key. The full key is returned exactly
// @Description  once; only its identifier and an argon2id hash are stored.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token from admin login"
// @Param        createAPIKeyRequest  body  CreateAPIKeyRequest  true  "Create API key request payload"
// @Success      201 {object} CreateAPIKeyResponse  "API key created"
// @Failure      400 {object} ErrorResponse  "Missing required fields"
// @Failure      401 {object} ErrorResponse  "Unauthorized"
// @Failure      500 {object} ErrorResponse  "Internal server error"
// @Router       /api/admin/api-keys [post]
func CreateAPIKeyHandler(c echo.Context) error {
	logger := c.Logger()

	var req CreateAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid create API key request payload:", err)
		return echo.ErrBadRequest
	}
	if req.Name == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "name field is required",
		}
	}

	fullKey, err := crypto.GenerateRandomString("pk_", 24, "hex")
	if err != nil {
		logger.Errorf("Failed to generate API key: %v", err)
		return echo.ErrInternalServerError
	}
	keyID := fullKey[:35]

	newCrypto := crypto.NewCrypto()
	hashedKey, err := newCrypto.HashPassword(fullKey)
	if err != nil {
		logger.Errorf("Failed to hash API key: %v", err)
		return echo.ErrInternalServerError
	}

	apiKey := models.APIKey{
		KeyID:       keyID,
		HashedKey:   hashedKey,
		Name:        req.Name,
		Description: req.Description,
	}
	if req.ExpiresAt != nil {
		expiresAt, err := time.Parse("2006-01-02", *req.ExpiresAt)
		if err != nil {
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "expires_at field must use the YYYY-MM-DD format",
			}
		}
		apiKey.ExpiresAt = &expiresAt
	}

	if err := db.Conn.Create(&apiKey).Error; err != nil {
		logger.Errorf("Failed to store API key: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusCreated, CreateAPIKeyResponse{
		APIKey:  fullKey,
		KeyID:   keyID,
		Name:    apiKey.Name,
		Message: "API key created successfully",
	})
}

// GetAllAPIKeysHandler godoc
// @Summary      List API keys
// @Description  Returns every active API key's metadata. Full keys are never
// @Description  retrievable after creation.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token from admin login"
// @Success      200 {object} APIKeyListResponse  "API keys retrieved"
// @Failure      401 {object} ErrorResponse  "Unauthorized"
// @Failure      500 {object} ErrorResponse  "Internal server error"
// @Router       /api/admin/api-keys [get]
func GetAllAPIKeysHandler(c echo.Context) error {
	logger := c.Logger()

	var keys []models.APIKey
	if err := db.Conn.Order("created_at DESC").Find(&keys).Error; err != nil {
		logger.Errorf("Failed to list API keys: %v", err)
		return echo.ErrInternalServerError
	}

	details := make([]APIKeyDetails, 0, len(keys))
	for _, key := range keys {
		detail := APIKeyDetails{
			KeyID:       key.KeyID,
			Name:        key.Name,
			Description: key.Description,
			CreatedAt:   key.CreatedAt.Format(time.RFC3339),
		}
		if key.LastUsedAt != nil {
			lastUsed := key.LastUsedAt.Format(time.RFC3339)
			detail.LastUsedAt = &lastUsed
		}
		if key.ExpiresAt != nil {
			expires := key.ExpiresAt.Format("2006-01-02")
			detail.ExpiresAt = &expires
		}
		details = append(details, detail)
	}

	return c.JSON(http.StatusOK, APIKeyListResponse{
		Data:    details,
		Message: "API keys retrieved successfully",
	})
}

// DeleteAPIKeyHandler godoc
// @Summary      Revoke an API key
// @Description  Soft-deletes the key; subsequent lookups with it fail with 401.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token from admin login"
// @Param        key_id  path  string  true  "Key ID to revoke"
// @Success      200 {object} GenericResponse  "API key revoked"
// @Failure      401 {object} ErrorResponse  "Unauthorized"
// @Failure      404 {object} ErrorResponse  "Key not found"
// @Failure      500 {object} ErrorResponse  "Internal server error"
// @Router       /api/admin/api-keys/{key_id} [delete]
func DeleteAPIKeyHandler(c echo.Context) error {
	logger := c.Logger()
	keyID := c.Param("key_id")

	apiKey := models.APIKey{}
	err := db.Conn.Where("key_id = ?", keyID).First(&apiKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "API key not found",
		}
	}
	if err != nil {
		logger.Errorf("Failed to find API key: %v", err)
		return echo.ErrInternalServerError
	}

	if err := db.Conn.Delete(&apiKey).Error; err != nil {
		logger.Errorf("Failed to delete API key: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, GenericResponse{
		Message: "API key revoked successfully",
	})
}
