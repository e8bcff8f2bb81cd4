// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// PortingRecord captures a number that moved between operators. Absence of a
// record is the normal case and never an error.
type PortingRecord struct {
	ID               uint   `gorm:"primaryKey"`
	PhoneNumber      string `gorm:"size:32;not null;uniqueIndex"`
	PreviousOperator string `gorm:"size:255;not null"`
	CurrentOperator  string `gorm:"size:255;not null"`
	PortedAt         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &PortingRecord{})
}
