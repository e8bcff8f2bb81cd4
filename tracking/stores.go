// SPDX-License-Identifier: GPL-3.0-only

package tracking

import (
	"errors"
	"lacak-server/models"
	"lacak-server/validator"

	"gorm.io/gorm"
)

// BlacklistGate answers whether a canonical number has been reported. A hit
// halts the pipeline before any caching or enrichment.
type BlacklistGate interface {
	Check(p validator.PhoneNumber) (*models.BlacklistEntry, error)
}

// PortingStore looks up number-portability records. Absence is the normal
// outcome.
type PortingStore interface {
	Lookup(p validator.PhoneNumber) (*models.PortingRecord, error)
}

type GormBlacklist struct {
	DB *gorm.DB
}

func (g *GormBlacklist) Check(p validator.PhoneNumber) (*models.BlacklistEntry, error) {
	var entry models.BlacklistEntry
	err := g.DB.Where("phone_number = ?", p.Canonical()).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

type GormPorting struct {
	DB *gorm.DB
}

func (g *GormPorting) Lookup(p validator.PhoneNumber) (*models.PortingRecord, error) {
	var record models.PortingRecord
	err := g.DB.Where("phone_number = ?", p.Canonical()).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
