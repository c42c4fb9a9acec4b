package domain

import "time"

// TimezoneResult is the body of a timezone lookup
type TimezoneResult struct {
	Timezone string `json:"timezone"`
}

// OffsetResult is the body of a UTC offset lookup
type OffsetResult struct {
	UTCOffset string `json:"utc_offset"`
}

// LocalTimeResult is the body of a local time lookup
type LocalTimeResult struct {
	UTCOffset string    `json:"utc_offset"`
	LocalTime time.Time `json:"local_time"`
}
