package detector

import (
	"strings"

	"tzdetect/internal/core/query"
	perr "tzdetect/internal/platform/errors"
	"tzdetect/internal/platform/validate"
)

// DefaultBaseURL is the public timezone lookup endpoint
const DefaultBaseURL = "http://timezonedb.wellfounded.dev/api/v1/timezones"

// Result fields understood by the lookup service
const (
	FieldTimezone  = "timezone"
	FieldUTCOffset = "utc_offset"
)

// LifecycleEvent names the host lifecycle point that triggers detection
type LifecycleEvent string

const (
	// EventNone registers no hook
	EventNone LifecycleEvent = "none"
	// EventBeforeCreate detects right before a record is first created
	EventBeforeCreate LifecycleEvent = "before_create"
	// EventBeforeSave detects before every save
	EventBeforeSave LifecycleEvent = "before_save"
)

// ParseEvent accepts none|before_create|before_save (case-insensitive); "" is none
func ParseEvent(s string) (LifecycleEvent, error) {
	switch e := LifecycleEvent(strings.ToLower(strings.TrimSpace(s))); e {
	case "", EventNone:
		return EventNone, nil
	case EventBeforeCreate, EventBeforeSave:
		return e, nil
	default:
		return "", perr.WithField(perr.Validationf("unknown lifecycle event %q", s), "on")
	}
}

// Options is the per host type detector configuration.
// Zero values take defaults in New; the result is read-only afterwards
type Options struct {
	Using       query.Using    `tz:"using"`
	As          string         `tz:"as" validate:"required,param_name"`
	RaiseErrors bool           `tz:"raise_errors"`
	Log         bool           `tz:"log"`
	On          LifecycleEvent `tz:"on" validate:"oneof=none before_create before_save"`
	BaseURL     string         `tz:"base_url" validate:"required,url"`
}

func (o Options) withDefaults() Options {
	o.Using = o.Using.OrDefault()
	if o.As == "" {
		o.As = FieldTimezone
	}
	if o.On == "" {
		o.On = EventNone
	}
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	// the query string is appended by BuildURL
	o.BaseURL = strings.TrimRight(o.BaseURL, "?")
	return o
}

// Validate fills defaults and checks o
func (o Options) Validate() (Options, error) {
	o = o.withDefaults()
	if err := validate.Struct(o); err != nil {
		return o, err
	}
	for _, a := range o.Using.Entries() {
		if err := validate.Struct(a); err != nil {
			return o, perr.WithField(err, "using")
		}
	}
	return o, nil
}
