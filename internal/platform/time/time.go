// Package time contains time related helpers
package time

import "time"

// Clock returns the current time; tests swap in a fixed one
type Clock func() time.Time

// System is the wall clock in UTC
func System() time.Time { return time.Now().UTC() }

// Fixed returns a Clock that always reports t
func Fixed(t time.Time) Clock { return func() time.Time { return t } }
