// SPDX-License-Identifier: GPL-3.0-only

package tracking

import (
	"errors"
	"lacak-server/crypto"
	"lacak-server/models"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Full keys look like pk_<48 hex chars>; the first 35 characters are the
// stored key identifier, the remainder only ever exists argon2id-hashed.
const keyIDLength = 35

// RateLimiter enforces the per-key daily quota. A key moves through three
// states: unseen (no record yet), within-limit, and exceeded. The window
// resets when the stored date falls behind the current date.
//
// The read-check-increment sequence per key runs under a per-key lock so two
// concurrent requests cannot both pass a near-limit check.
type RateLimiter struct {
	DB        *gorm.DB
	MaxPerDay int

	// Now is swappable so tests can roll the window over.
	Now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRateLimiter(db *gorm.DB, maxPerDay int) *RateLimiter {
	return &RateLimiter{
		DB:        db,
		MaxPerDay: maxPerDay,
		Now:       time.Now,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (r *RateLimiter) keyLock(keyID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[keyID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[keyID] = lock
	}
	return lock
}

func (r *RateLimiter) today() string {
	return r.Now().Format("2006-01-02")
}

// ValidateKey resolves a raw API key to its stored record. Malformed or
// unknown keys return (nil, nil); only backing-store failures are errors.
func (r *RateLimiter) ValidateKey(rawKey string) (*models.APIKey, error) {
	if rawKey == "" || !strings.HasPrefix(rawKey, "pk_") || len(rawKey) < keyIDLength {
		return nil, nil
	}

	keyID := rawKey[:keyIDLength]
	var apiKey models.APIKey
	err := r.DB.Where("key_id = ?", keyID).First(&apiKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if apiKey.ExpiresAt != nil && apiKey.ExpiresAt.Before(r.Now()) {
		return nil, nil
	}

	cryptoInstance := crypto.NewCrypto()
	if err := cryptoInstance.VerifyPassword(rawKey, apiKey.HashedKey); err != nil {
		return nil, nil
	}

	now := r.Now()
	apiKey.LastUsedAt = &now
	if err := r.DB.Save(&apiKey).Error; err != nil {
		return nil, err
	}

	return &apiKey, nil
}

// CheckLimit reports whether the key may perform another billable lookup in
// the current window. A stale window is reset before the comparison,
// regardless of the prior state.
func (r *RateLimiter) CheckLimit(keyID string) (bool, error) {
	lock := r.keyLock(keyID)
	lock.Lock()
	defer lock.Unlock()

	var record models.RateLimitRecord
	err := r.DB.Where("key_id = ?", keyID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Unseen key, nothing consumed yet.
		return r.MaxPerDay > 0, nil
	}
	if err != nil {
		return false, err
	}

	if record.WindowDate != r.today() {
		if err := r.DB.Model(&record).
			Updates(map[string]any{"count": 0, "window_date": r.today()}).Error; err != nil {
			return false, err
		}
		return r.MaxPerDay > 0, nil
	}

	return record.Count < r.MaxPerDay, nil
}

// Increment bills one successful lookup to the key. It is never called for
// validation failures or blacklist rejections.
func (r *RateLimiter) Increment(keyID string) error {
	lock := r.keyLock(keyID)
	lock.Lock()
	defer lock.Unlock()

	var record models.RateLimitRecord
	err := r.DB.Where("key_id = ?", keyID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.RateLimitRecord{
			KeyID:      keyID,
			Count:      1,
			WindowDate: r.today(),
		}
		return r.DB.Create(&record).Error
	}
	if err != nil {
		return err
	}

	if record.WindowDate != r.today() {
		return r.DB.Model(&record).
			Updates(map[string]any{"count": 1, "window_date": r.today()}).Error
	}

	return r.DB.Model(&record).
		UpdateColumn("count", gorm.Expr("count + ?", 1)).Error
}

// Remaining reports the unused quota for the key's current window.
func (r *RateLimiter) Remaining(keyID string) (int, error) {
	var record models.RateLimitRecord
	err := r.DB.Where("key_id = ?", keyID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.MaxPerDay, nil
	}
	if err != nil {
		return 0, err
	}

	if record.WindowDate != r.today() {
		return r.MaxPerDay, nil
	}

	remaining := r.MaxPerDay - record.Count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
