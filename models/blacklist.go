// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlacklistEntry flags a number as reported. Presence of a row is
// authoritative: lookups for the number are rejected before any caching or
// enrichment happens.
type BlacklistEntry struct {
	ID          uint      `gorm:"primaryKey"`
	EID         uuid.UUID `gorm:"type:uuid;not null"`
	PhoneNumber string    `gorm:"size:32;not null;uniqueIndex"`
	Reason      *string   `gorm:"type:text;default:null"`
	ReportedAt  time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (entry *BlacklistEntry) BeforeCreate(tx *gorm.DB) (err error) {
	entry.EID = uuid.New()
	if entry.ReportedAt.IsZero() {
		entry.ReportedAt = time.Now()
	}
	return
}

func init() {
	AllModels = append(AllModels, &BlacklistEntry{})
}
