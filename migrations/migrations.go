// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"
	"lacak-server/commons"
	"lacak-server/crypto"
	"lacak-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_bootstrap_admin",
			Migrate: func(tx *gorm.DB) error {
				email := commons.GetEnv("ADMIN_EMAIL")
				password := commons.GetEnv("ADMIN_PASSWORD")
				if email == "" || password == "" {
					commons.Logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin bootstrap")
					return nil
				}

				var existing models.User
				err := tx.Where("email = ?", email).First(&existing).Error
				if err == nil {
					return nil
				}
				if err != gorm.ErrRecordNotFound {
					return fmt.Errorf("failed to check for existing admin: %w", err)
				}

				hash, err := crypto.NewCrypto().HashPassword(password)
				if err != nil {
					return fmt.Errorf("failed to hash admin password: %w", err)
				}

				admin := models.User{
					Email:    email,
					Password: hash,
				}
				if err := tx.Create(&admin).Error; err != nil {
					return fmt.Errorf("failed to create admin user: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			ID: "002_seed_blacklist",
			Migrate: func(tx *gorm.DB) error {
				spamReason := "Reported as spam caller"
				fraudReason := "Known fraud number"
				seeds := []models.BlacklistEntry{
					{PhoneNumber: "+6281234567000", Reason: &spamReason},
					{PhoneNumber: "+6285555555555", Reason: &fraudReason},
				}
				for _, seed := range seeds {
					var existing models.BlacklistEntry
					err := tx.Where("phone_number = ?", seed.PhoneNumber).First(&existing).Error
					if err == nil {
						continue
					}
					if err != gorm.ErrRecordNotFound {
						return fmt.Errorf("failed to check blacklist seed %s: %w", seed.PhoneNumber, err)
					}
					if err := tx.Create(&seed).Error; err != nil {
						return fmt.Errorf("failed to seed blacklist entry %s: %w", seed.PhoneNumber, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
	}
}
