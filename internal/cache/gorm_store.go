package cache

import (
	"context"
	"errors"
	"time"

	"github.com/careerforge/careerforge-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists cache entries in the cache_entries table so hits survive
// process restarts. It is the production Store.
type GormStore struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db, now: time.Now}
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.CacheEntry
	err := s.DB.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if s.now().After(entry.ExpiresAt) {
		// Stale row. Best-effort cleanup, the caller only cares about the miss.
		s.DB.WithContext(ctx).Delete(&models.CacheEntry{}, "key = ?", key)
		return nil, false, nil
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := models.CacheEntry{
		Key:       key,
		Value:     value,
		ExpiresAt: s.now().Add(ttl),
	}
	// Overwrite semantics: a second Set under the same key replaces the value
	// and restarts the TTL clock.
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
		}).
		Create(&entry).Error
}
