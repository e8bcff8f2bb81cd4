// SPDX-License-Identifier: GPL-3.0-only

package handlers

import "lacak-server/tracking"

// swagger:model TrackRequest
type TrackRequest struct {
	// Phone number in any common notation
	// required: true
	Phone string `json:"phone" example:"081234567890"`
}

// swagger:model BatchTrackRequest
type BatchTrackRequest struct {
	// Phone numbers to look up, at most 10 per call
	// required: true
	Phones []string `json:"phones" example:"[\"081234567890\", \"+6281798765432\"]"`
}

// swagger:model ResponseMeta
type ResponseMeta struct {
	// Unique identifier for this request
	RequestID string `json:"request_id" example:"req_550e8400e29b41d4"`
	// Timestamp of when the request was processed
	ProcessedAt string `json:"processed_at" example:"2024-10-01T12:00:00Z"`
}

// swagger:model TrackResponse
type TrackResponse struct {
	// Whether the lookup succeeded
	Success bool `json:"success"`
	// The enriched lookup result
	Data *tracking.LookupResult `json:"data"`
	// Request metadata
	Meta ResponseMeta `json:"meta"`
}

// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false for error responses
	Success bool `json:"success"`
	// Human-readable error description
	Error string `json:"error" example:"Invalid phone number format"`
	// Stable error code, mirrors the HTTP status
	Code int `json:"code" example:"400"`
	// Timestamp of when the error occurred
	Timestamp string `json:"timestamp" example:"2024-10-01T12:00:00Z"`
}

// swagger:model BatchTrackItem
type BatchTrackItem struct {
	// The submitted phone number, as received
	Phone string `json:"phone"`
	// Whether this entry succeeded
	Success bool `json:"success"`
	// Lookup result, present on success
	Data *tracking.LookupResult `json:"data,omitempty"`
	// Error description, present on failure
	Error string `json:"error,omitempty"`
	// Stable error code, present on failure
	Code int `json:"code,omitempty"`
}

// swagger:model BatchTrackResponse
type BatchTrackResponse struct {
	// Whether the batch was processed
	Success bool `json:"success"`
	// Per-number outcomes in submission order
	Data []BatchTrackItem `json:"data"`
	// Request metadata
	Meta ResponseMeta `json:"meta"`
}

// swagger:model VerifyResponse
type VerifyResponse struct {
	// Whether the supplied API key is valid
	Valid bool `json:"valid"`
	// Key identifier (prefix), present for valid keys
	KeyID string `json:"key_id,omitempty" example:"pk_a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"`
	// Name of the key, present for valid keys
	Name string `json:"name,omitempty" example:"Mobile client"`
	// Remaining lookups in the current daily window
	Remaining int `json:"remaining"`
	// Configured daily limit
	Limit int `json:"limit"`
}

// swagger:model StatsResponse
type StatsResponse struct {
	// Total successful lookups recorded
	TotalTracked int64 `json:"total_tracked" example:"1520"`
	// Lookups recorded today
	TrackedToday int64 `json:"tracked_today" example:"42"`
	// Numbers currently blacklisted
	BlacklistSize int64 `json:"blacklist_size" example:"17"`
	// Distinct API keys seen today
	ActiveKeysToday int64 `json:"active_keys_today" example:"5"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	// Admin email address
	Email string `json:"email" example:"admin@example.com"`
	// Admin password
	Password string `json:"password" example:"MySecretPassword@123"`
}

// swagger:model LoginResponse
type LoginResponse struct {
	// Admin session token, used as a Bearer token on management endpoints
	AdminToken string `json:"admin_token" example:"sample_admin_token"`
	// Message indicating successful operation
	Message string `json:"message" example:"Login successful"`
}

// swagger:model CreateAPIKeyRequest
type CreateAPIKeyRequest struct {
	// Name of the API key
	Name string `json:"name" example:"Mobile client"`
	// Description of the API key
	Description *string `json:"description" example:"Key used by the Android app."`
	// Expiration date for the API key (optional)
	ExpiresAt *string `json:"expires_at" example:"2025-12-31"`
}

// swagger:model CreateAPIKeyResponse
type CreateAPIKeyResponse struct {
	// The full API key, only ever returned here
	APIKey string `json:"api_key" example:"pk_a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4"`
	// Key ID of the created API key
	KeyID string `json:"key_id" example:"pk_a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"`
	// Name of the API key
	Name string `json:"name" example:"Mobile client"`
	// Message indicating successful creation
	Message string `json:"message" example:"API key created successfully"`
}

// swagger:model APIKeyDetails
type APIKeyDetails struct {
	// Key ID of the API key
	KeyID string `json:"key_id"`
	// Name of the API key
	Name string `json:"name"`
	// Description of the API key
	Description *string `json:"description"`
	// Timestamp of when the API key was created
	CreatedAt string `json:"created_at"`
	// Last used timestamp of the API key
	LastUsedAt *string `json:"last_used_at"`
	// Expiration date for the API key
	ExpiresAt *string `json:"expires_at"`
}

// swagger:model APIKeyListResponse
type APIKeyListResponse struct {
	// List of API keys
	Data []APIKeyDetails `json:"data"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"API keys retrieved successfully"`
}

// swagger:model BlacklistEntryRequest
type BlacklistEntryRequest struct {
	// Phone number to blacklist, any common notation
	// required: true
	Phone string `json:"phone" example:"081234567890"`
	// Reason the number was reported
	Reason *string `json:"reason" example:"SMS spam campaign"`
}

// swagger:model BlacklistEntryDetails
type BlacklistEntryDetails struct {
	// Entry ID
	EID string `json:"eid" example:"550e8400-e29b-41d4-a716-446655440000"`
	// The blacklisted number in E.164 form
	PhoneNumber string `json:"phone_number" example:"+6281234567890"`
	// Reason the number was reported
	Reason *string `json:"reason"`
	// Timestamp of when the number was reported
	ReportedAt string `json:"reported_at" example:"2024-10-01T12:00:00Z"`
}

// swagger:model BlacklistListResponse
type BlacklistListResponse struct {
	// List of blacklist entries
	Data []BlacklistEntryDetails `json:"data"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"Blacklist retrieved successfully"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message"`
}
