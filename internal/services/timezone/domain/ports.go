// Package domain holds the contracts of the timezone service
package domain

import (
	"context"
	"time"

	"tzdetect/internal/core/detector"
	"tzdetect/internal/core/subject"
)

// Hook is the callback a host runs before persisting a record
type Hook = func(ctx context.Context, subj subject.FieldWritable) error

// HookRegistry is implemented by hosts that can run callbacks before create or save
type HookRegistry interface {
	RegisterPreCreateHook(fn Hook)
	RegisterPreSaveHook(fn Hook)
}

// DetectorPort resolves a single field for a subject
type DetectorPort interface {
	Detect(ctx context.Context, subj subject.FieldReadable, field ...string) (string, bool, error)
	Options() detector.Options
}

// IntegratorPort is consumed by handlers, hosts and the CLI
type IntegratorPort interface {
	DetectTimezone(ctx context.Context, subj subject.FieldReadable) (string, bool, error)
	DetectTimezoneAndAssign(ctx context.Context, subj subject.FieldWritable) error
	Attach(reg HookRegistry)
	UTCOffset(ctx context.Context, subj subject.FieldReadable) (string, bool, error)
	GMTOffset(ctx context.Context, subj subject.FieldReadable) (string, bool, error)
	CurrentTime(ctx context.Context, subj subject.FieldReadable) (time.Time, bool, error)
}
