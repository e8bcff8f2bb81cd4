// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"
)

// RateLimitRecord tracks billable lookups per API key for the current daily
// window. A record is only created on the first observed use of a key. The
// count is incremented exactly once per successful lookup and resets when
// WindowDate falls behind the current date.
type RateLimitRecord struct {
	ID         uint   `gorm:"primaryKey"`
	KeyID      string `gorm:"size:255;not null;uniqueIndex"`
	Count      int    `gorm:"not null;default:0"`
	WindowDate string `gorm:"size:10;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func init() {
	AllModels = append(AllModels, &RateLimitRecord{})
}
