// Package tzoffset formats UTC offsets and applies them to instants
package tzoffset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	perr "tzdetect/internal/platform/errors"
)

// MaxSeconds bounds the magnitude of an offset; anything at or past a full day is malformed
const MaxSeconds = 24 * 60 * 60

// Format renders seconds as ±HH:MM; sub-minute remainders are truncated
func Format(seconds int64) string {
	sign := '+'
	mag := uint64(seconds)
	if seconds < 0 {
		sign = '-'
		mag = -mag
	}
	return fmt.Sprintf("%c%02d:%02d", sign, mag/3600, (mag%3600)/60)
}

// ParseSeconds reads a numeric offset in seconds as reported by the lookup service.
// Fractional values are truncated toward zero; magnitudes of MaxSeconds or more are rejected
func ParseSeconds(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n <= -MaxSeconds || n >= MaxSeconds {
			return 0, perr.InvalidArgf("utc_offset %q is out of range", raw)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, perr.InvalidArgf("utc_offset %q is not a number of seconds", raw)
	}
	if math.Abs(f) >= MaxSeconds {
		return 0, perr.InvalidArgf("utc_offset %q is out of range", raw)
	}
	return int64(f), nil
}

// Parse reads a ±HH:MM string back into seconds
func Parse(offset string) (int64, error) {
	s := strings.TrimSpace(offset)
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return 0, perr.InvalidArgf("offset %q is not in ±HH:MM form", offset)
	}
	h, err1 := strconv.Atoi(s[1:3])
	m, err2 := strconv.Atoi(s[4:6])
	if err1 != nil || err2 != nil || h > 23 || m > 59 {
		return 0, perr.InvalidArgf("offset %q is not in ±HH:MM form", offset)
	}
	secs := int64(h*3600 + m*60)
	if s[0] == '-' {
		secs = -secs
	}
	return secs, nil
}

// Zone returns a fixed zone named after the ±HH:MM offset
func Zone(offset string) (*time.Location, error) {
	secs, err := Parse(offset)
	if err != nil {
		return nil, err
	}
	return time.FixedZone(offset, int(secs)), nil
}

// In shifts now into the fixed zone for offset
func In(now time.Time, offset string) (time.Time, error) {
	loc, err := Zone(offset)
	if err != nil {
		return time.Time{}, err
	}
	return now.In(loc), nil
}
