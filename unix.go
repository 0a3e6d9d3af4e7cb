package timekit

import "time"

// ToUnixTimeSecondsUTC converts t to UTC and returns seconds elapsed since 1970-01-01T00:00:00Z
func ToUnixTimeSecondsUTC(t time.Time, opts ...Option) (int64, error) {
	utc, err := LocalToUTC(t, opts...)
	if err != nil {
		return 0, err
	}
	return utc.Unix(), nil
}

// FromUnixTimeSecondsUTC returns UTC time for seconds elapsed since 1970-01-01T00:00:00Z
func FromUnixTimeSecondsUTC(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}
