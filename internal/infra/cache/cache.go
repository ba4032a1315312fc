package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrCacheUnavailable возвращается при ошибке обращения к хранилищу кеша
	ErrCacheUnavailable = errors.New("cache: storage unavailable")
)

// Cache стратегия кеша и коротких блокировок
// Реализации: Redis (общая для всех инстансов) и Memory (один процесс, тесты)
type Cache interface {
	// Get возвращает значение и признак его наличия
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// AcquireLock ставит ключ, только если его нет (SET NX). false - блокировка занята
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	Close() error
}

// BranchDateLockKey ключ блокировки создания броней на день филиала
func BranchDateLockKey(branchID int64, date time.Time) string {
	return fmt.Sprintf("lock:branch:%d:date:%s", branchID, date.Format("2006-01-02"))
}

// SlotLockKey ключ блокировки создания брони на конкретный стол.
// Без стола (автоподбор) блокируется весь день филиала
func SlotLockKey(branchID int64, date time.Time, tableID *int64) string {
	if tableID == nil {
		return BranchDateLockKey(branchID, date)
	}
	return fmt.Sprintf("%s:table:%d", BranchDateLockKey(branchID, date), *tableID)
}

// PreferencesKey ключ настроек уведомлений получателя
func PreferencesKey(recipientType string, recipientID int64) string {
	return fmt.Sprintf("notifications:prefs:%s:%d", recipientType, recipientID)
}
