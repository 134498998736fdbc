package domain

import "time"

// Setting represents a key-value configuration setting
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// setting keys
const (
	SettingLastSync      = "catalog_last_sync"
	SettingLastSyncCount = "catalog_last_sync_count"
)
