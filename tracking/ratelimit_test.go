package tracking

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"lacak-server/crypto"
	"lacak-server/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a throwaway in-memory database. The shared-cache DSN keeps all
// pooled connections on the same database, scoped per test to avoid bleed.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := conn.AutoMigrate(&models.APIKey{}, &models.RateLimitRecord{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return conn
}

func mintTestKey(t *testing.T, db *gorm.DB) string {
	t.Helper()
	rawKey, err := crypto.GenerateRandomString("pk_", 24, "hex")
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	hash, err := crypto.NewCrypto().HashPassword(rawKey)
	if err != nil {
		t.Fatalf("Failed to hash key: %v", err)
	}
	apiKey := models.APIKey{
		KeyID:     rawKey[:keyIDLength],
		HashedKey: hash,
		Name:      "test key",
	}
	if err := db.Create(&apiKey).Error; err != nil {
		t.Fatalf("Failed to store key: %v", err)
	}
	return rawKey
}

func TestValidateKeyAcceptsMintedKey(t *testing.T) {
	db := testDB(t)
	limiter := NewRateLimiter(db, 100)
	rawKey := mintTestKey(t, db)

	apiKey, err := limiter.ValidateKey(rawKey)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if apiKey == nil {
		t.Fatal("Expected minted key to validate")
	}
	if apiKey.KeyID != rawKey[:keyIDLength] {
		t.Errorf("Expected key ID %s, got %s", rawKey[:keyIDLength], apiKey.KeyID)
	}
	if apiKey.LastUsedAt == nil {
		t.Error("Expected LastUsedAt to be stamped on validation")
	}
}

func TestValidateKeyRejectsMalformedAndUnknown(t *testing.T) {
	db := testDB(t)
	limiter := NewRateLimiter(db, 100)
	rawKey := mintTestKey(t, db)

	cases := []string{
		"",
		"not-a-key",
		"pk_short",
		"sk_" + rawKey[3:],
		"pk_000000000000000000000000000000000000000000000000",
	}
	for _, raw := range cases {
		apiKey, err := limiter.ValidateKey(raw)
		if err != nil {
			t.Fatalf("Unexpected error for %q: %v", raw, err)
		}
		if apiKey != nil {
			t.Errorf("Expected key %q to be rejected", raw)
		}
	}
}

func TestValidateKeyRejectsTamperedSecret(t *testing.T) {
	db := testDB(t)
	limiter := NewRateLimiter(db, 100)
	rawKey := mintTestKey(t, db)

	// Same key ID prefix, different secret tail. The hash comparison must
	// catch this even though the record lookup succeeds.
	tampered := rawKey[:keyIDLength] + "ffffffffffffffff"
	apiKey, err := limiter.ValidateKey(tampered)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if apiKey != nil {
		t.Error("Expected tampered key to be rejected")
	}
}

func TestValidateKeyRejectsExpiredKey(t *testing.T) {
	db := testDB(t)
	limiter := NewRateLimiter(db, 100)
	rawKey := mintTestKey(t, db)

	past := time.Now().Add(-time.Hour)
	if err := db.Model(&models.APIKey{}).
		Where("key_id = ?", rawKey[:keyIDLength]).
		Update("expires_at", past).Error; err != nil {
		t.Fatalf("Failed to expire key: %v", err)
	}

	apiKey, err := limiter.ValidateKey(rawKey)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if apiKey != nil {
		t.Error("Expected expired key to be rejected")
	}
}

func TestRateLimitExhaustion(t *testing.T) {
	db := testDB(t)
	limiter := NewRateLimiter(db, 2)
	keyID := "pk_00000000000000000000000000000000"

	for i := 0; i < 2; i++ {
		ok, err := limiter.CheckLimit(keyID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("Expected request %d to be within limit", i+1)
		}
		if err := limiter.Increment(keyID); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	ok, err := limiter.CheckLimit(keyID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ok {
		t.Error("Expected third request to exceed the limit of 2")
	}
}

func TestRateLimitWindowRollover(t *testing.T) {
	db := testDB(t)
	limiter := NewRateLimiter(db, 2)
	keyID := "pk_00000000000000000000000000000000"

	now := time.Date(2026, 1, 15, 23, 0, 0, 0, time.UTC)
	limiter.Now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if err := limiter.Increment(keyID); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if ok, _ := limiter.CheckLimit(keyID); ok {
		t.Fatal("Expected limit to be exhausted before rollover")
	}

	now = now.Add(2 * time.Hour) // crosses midnight into the next window
	ok, err := limiter.CheckLimit(keyID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ok {
		t.Error("Expected fresh quota after the window date changed")
	}

	if err := limiter.Increment(keyID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	remaining, err := limiter.Remaining(keyID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if remaining != 1 {
		t.Errorf("Expected 1 remaining after one lookup in the new window, got %d", remaining)
	}
}

func TestRemainingForUnseenKey(t *testing.T) {
	db := testDB(t)
	limiter := NewRateLimiter(db, 100)

	remaining, err := limiter.Remaining("pk_00000000000000000000000000000000")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if remaining != 100 {
		t.Errorf("Expected full quota for unseen key, got %d", remaining)
	}
}
