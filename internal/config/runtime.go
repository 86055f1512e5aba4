package config

import (
	"log/slog"
	"sync/atomic"
)

// Runtime holds the settings that may change while the server runs.
type Runtime struct {
	pageSize atomic.Int64
	level    *slog.LevelVar
}

// NewRuntime seeds the live settings from cfg. level is shared with the
// log handler; changing it changes what gets logged.
func NewRuntime(cfg Config, level *slog.LevelVar) *Runtime {
	r := &Runtime{level: level}
	r.Apply(cfg)
	return r
}

// PageSize returns the current list page size.
func (r *Runtime) PageSize() int {
	return int(r.pageSize.Load())
}

// Apply copies the reloadable settings from cfg. cfg must be valid.
func (r *Runtime) Apply(cfg Config) {
	r.pageSize.Store(int64(cfg.PageSize))
	if l, err := cfg.Level(); err == nil {
		r.level.Set(l)
	}
}
