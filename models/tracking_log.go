// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// TrackingLog records one successful lookup for the stats and audit
// endpoints.
type TrackingLog struct {
	ID              uint    `gorm:"primaryKey"`
	PhoneNumber     string  `gorm:"size:32;not null;index"`
	FormattedNumber string  `gorm:"size:32;not null"`
	Operator        *string `gorm:"size:255;default:null"`
	RequestIP       *string `gorm:"size:64;default:null"`
	UserAgent       *string `gorm:"size:512;default:null"`
	KeyID           string  `gorm:"size:255;not null;index"`
	Cached          bool    `gorm:"not null;default:false"`
	Success         bool    `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &TrackingLog{})
}
