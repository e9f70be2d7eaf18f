package models

import (
	"time"
)

// CacheEntry is one cached generation artifact. Key is the sanitized derived
// key (see internal/letters), Value is the JSON-encoded cached letter.
// Rows past ExpiresAt are treated as absent and cleaned up lazily on read;
// there is no sweeper job.
type CacheEntry struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     []byte    `gorm:"type:bytea;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
}

// TableName keeps the table name stable if the struct is ever renamed.
func (CacheEntry) TableName() string { return "cache_entries" }
