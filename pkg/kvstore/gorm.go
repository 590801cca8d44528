package kvstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// advisoryLockID is the pg_advisory_xact_lock key every writer of the
// kv_entries table takes, so separate API processes do not clobber each other.
const advisoryLockID int64 = 0x6572705f6b76 // "erp_kv"

// Entry is one row of the kv_entries table.
type Entry struct {
	Key       string    `gorm:"column:entry_key;type:varchar(255);primaryKey"`
	Value     string    `gorm:"column:entry_value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

// GormStore persists entries through gorm. Built for PostgreSQL; other
// dialects work without the cross-process lock.
type GormStore struct {
	mu sync.Mutex
	db *gorm.DB
}

// NewGormStore migrates the kv_entries table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	return gormBucket{s.db}.Get(ctx, key)
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	return gormBucket{s.db}.Set(ctx, key, value)
}

func (s *GormStore) Remove(ctx context.Context, key string) error {
	return gormBucket{s.db}.Remove(ctx, key)
}

func (s *GormStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).Model(&Entry{}).Order("entry_key ASC").Pluck("entry_key", &keys).Error
	return keys, err
}

func (s *GormStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Entry{}).Error
}

func (s *GormStore) Update(ctx context.Context, fn func(b Bucket) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", advisoryLockID).Error; err != nil {
				return err
			}
		}
		return fn(gormBucket{tx})
	})
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormBucket works on either the root *gorm.DB or an open transaction.
type gormBucket struct {
	db *gorm.DB
}

func (b gormBucket) Get(ctx context.Context, key string) (string, bool, error) {
	var e Entry
	err := b.db.WithContext(ctx).Where("entry_key = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (b gormBucket) Set(ctx context.Context, key, value string) error {
	e := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&e).Error
}

func (b gormBucket) Remove(ctx context.Context, key string) error {
	return b.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&Entry{}).Error
}
