package module

import (
	"tzdetect/internal/adapters/lookup"
	"tzdetect/internal/core/detector"
	"tzdetect/internal/core/query"
	"tzdetect/internal/platform/config"
	"tzdetect/internal/platform/logger"
)

// Options holds configuration settings for the timezone module
type Options struct {
	Detector detector.Options
	Lookup   lookup.Options
}

// FromConfig extracts Options from TZDETECT_* keys
func FromConfig(cfg config.Conf) Options {
	tc := cfg.Prefix("TZDETECT_")
	return Options{
		Detector: detector.Options{
			Using:       query.Parse(tc.MayCSV("USING", nil)),
			As:          tc.MayString("AS", detector.FieldTimezone),
			RaiseErrors: tc.MayBool("RAISE_ERRORS", false),
			Log:         tc.MayBool("LOG", false),
			On:          mustEvent(tc),
			BaseURL:     tc.MayString("BASE_URL", detector.DefaultBaseURL),
		},
		Lookup: lookup.Options{
			UserAgent:  tc.MayString("USER_AGENT", "tzdetect"),
			Timeout:    tc.MayDuration("TIMEOUT", 0),
			RatePerSec: tc.MayFloat64("RPS", 0),
			Burst:      tc.MayInt("BURST", 0),
		},
	}
}

// mustEvent panics on an unknown TZDETECT_ON, like the other config readers do on bad values
func mustEvent(tc config.Conf) detector.LifecycleEvent {
	raw := tc.MayString("ON", "")
	on, err := detector.ParseEvent(raw)
	if err != nil {
		logger.Get().Panic().Err(err).Str("key", "TZDETECT_ON").Str("value", raw).Msg("invalid lifecycle event")
	}
	return on
}
