package timekit

import (
	"fmt"
	"time"
)

// DifferenceWithUTC describes the distance between t, converted to UTC, and the current UTC time,
// i.e. "Difference with UTC: 1 hour 5 minutes"
func DifferenceWithUTC(t time.Time, opts ...Option) (string, error) {
	options := resolveOptions(opts)
	utc, err := localToUTC(t, options)
	if err != nil {
		return "", err
	}
	return describeDifference("UTC", utc.Sub(options.Clock.Now().UTC())), nil
}

// DifferenceWithLocal describes the distance between wall clock of t and the current local wall clock
func DifferenceWithLocal(t time.Time, opts ...Option) string {
	options := resolveOptions(opts)
	now := options.Clock.Now().In(options.Location)
	return describeDifference("Local", wallOf(t).Sub(wallOf(now)))
}

// describeDifference renders whole hours and remaining whole minutes of |diff|
func describeDifference(reference string, diff time.Duration) string {
	if diff < 0 {
		diff = -diff
	}
	hours := int64(diff / time.Hour)
	minutes := int64(diff % time.Hour / time.Minute)
	return fmt.Sprintf("Difference with %s: %d %s %d %s", reference, hours, plural(hours, "hour"), minutes, plural(minutes, "minute"))
}

func plural(count int64, unit string) string {
	if count == 1 {
		return unit
	}
	return unit + "s"
}
