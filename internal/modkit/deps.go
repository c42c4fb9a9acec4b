// Package modkit provides module wiring and core deps
package modkit

import (
	"tzdetect/internal/modkit/repokit"
	"tzdetect/internal/platform/config"
	"tzdetect/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// PG is nil when no database is configured
	PG repokit.TxRunner
}

// HasPG reports whether a database handle was wired
func (d Deps) HasPG() bool { return d.PG != nil }
