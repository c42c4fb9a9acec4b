// Package service ties a detector to host lifecycle events and derives offsets from it
package service

import (
	"context"
	"time"

	"tzdetect/internal/core/detector"
	"tzdetect/internal/core/subject"
	"tzdetect/internal/core/tzoffset"
	perr "tzdetect/internal/platform/errors"
	"tzdetect/internal/platform/logger"
	tim "tzdetect/internal/platform/time"
	"tzdetect/internal/services/timezone/domain"
)

// Integrator exposes detection to a host type
type Integrator struct {
	det  domain.DetectorPort
	opts detector.Options
	now  tim.Clock
	log  *logger.Logger
}

// Option customizes an Integrator
type Option func(*Integrator)

// WithClock replaces the wall clock used by CurrentTime
func WithClock(c tim.Clock) Option {
	return func(i *Integrator) {
		if c != nil {
			i.now = c
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *logger.Logger) Option {
	return func(i *Integrator) {
		if l != nil {
			i.log = l
		}
	}
}

// New builds an Integrator over det
func New(det domain.DetectorPort, opts ...Option) *Integrator {
	if det == nil {
		panic("timezone service: nil detector")
	}
	i := &Integrator{
		det:  det,
		opts: det.Options(),
		now:  tim.System,
		log:  logger.Named("timezone"),
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

var _ domain.IntegratorPort = (*Integrator)(nil)

// DetectTimezone returns the subject's timezone without touching it
func (i *Integrator) DetectTimezone(ctx context.Context, subj subject.FieldReadable) (string, bool, error) {
	return i.det.Detect(ctx, subj, detector.FieldTimezone)
}

// DetectTimezoneAndAssign writes the detected timezone into the configured field, nil when none is found.
// Nothing is written when detection fails
func (i *Integrator) DetectTimezoneAndAssign(ctx context.Context, subj subject.FieldWritable) error {
	tz, ok, err := i.DetectTimezone(ctx, subj)
	if err != nil {
		return err
	}
	var v *string
	if ok {
		v = &tz
	}
	if err := subj.SetField(i.opts.As, v); err != nil {
		return perr.WithField(perr.Wrapf(err, perr.ErrorCodeSubjectAccess, "assign %s", i.opts.As), i.opts.As)
	}
	return nil
}

// Attach registers DetectTimezoneAndAssign on reg for the configured lifecycle event
func (i *Integrator) Attach(reg domain.HookRegistry) {
	switch i.opts.On {
	case detector.EventBeforeCreate:
		reg.RegisterPreCreateHook(i.DetectTimezoneAndAssign)
	case detector.EventBeforeSave:
		reg.RegisterPreSaveHook(i.DetectTimezoneAndAssign)
	default:
		return
	}
	i.log.Debug().Str("on", string(i.opts.On)).Str("as", i.opts.As).Msg("timezone hook attached")
}

// UTCOffset returns the subject's offset as ±HH:MM.
// A utc_offset the service reports in a non-numeric or out-of-range form counts as absent
func (i *Integrator) UTCOffset(ctx context.Context, subj subject.FieldReadable) (string, bool, error) {
	raw, ok, err := i.det.Detect(ctx, subj, detector.FieldUTCOffset)
	if err != nil || !ok {
		return "", false, err
	}
	secs, err := tzoffset.ParseSeconds(raw)
	if err != nil {
		logger.C(ctx, i.log).Warn().Err(err).Str("utc_offset", raw).Msg("ignoring malformed utc offset")
		return "", false, nil
	}
	return tzoffset.Format(secs), true, nil
}

// GMTOffset is UTCOffset under its other name
func (i *Integrator) GMTOffset(ctx context.Context, subj subject.FieldReadable) (string, bool, error) {
	return i.UTCOffset(ctx, subj)
}

// CurrentTime returns now in a fixed zone for the subject's offset; the zone is named after the offset
func (i *Integrator) CurrentTime(ctx context.Context, subj subject.FieldReadable) (time.Time, bool, error) {
	offset, ok, err := i.UTCOffset(ctx, subj)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	t, err := tzoffset.In(i.now(), offset)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
