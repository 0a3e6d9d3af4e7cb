package timekit

import (
	"sort"
	"time"
)

// DSTPolicy defines how wall clock readings inside daylight saving transitions resolve to an instant
type DSTPolicy int

const (
	//DSTStandard rejects skipped readings and picks standard time for repeated ones
	DSTStandard DSTPolicy = iota
	//DSTReject rejects both skipped and repeated readings
	DSTReject
	//DSTShiftForward moves skipped readings forward by the gap length and picks the earlier repeated one
	DSTShiftForward
)

func (p DSTPolicy) String() string {
	switch p {
	case DSTReject:
		return "reject"
	case DSTShiftForward:
		return "shiftForward"
	}
	return "standard"
}

// wallOf returns wall clock reading of t as UTC based time
func wallOf(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return time.Date(year, month, day, hour, minute, second, t.Nanosecond(), time.UTC)
}

// resolveWall returns the instant showing wall clock reading in location
func resolveWall(wall time.Time, location *time.Location, policy DSTPolicy) (time.Time, error) {
	if location == time.UTC {
		return wall, nil
	}
	candidates := wallCandidates(wall, location)
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		if policy == DSTShiftForward {
			_, before := wall.Add(-24 * time.Hour).In(location).Zone()
			return wall.Add(-time.Duration(before) * time.Second).In(location), nil
		}
		return time.Time{}, &ConversionError{Wall: wall, Location: location.String(), Err: ErrNonexistentTime}
	}
	switch policy {
	case DSTReject:
		return time.Time{}, &ConversionError{Wall: wall, Location: location.String(), Err: ErrAmbiguousTime}
	case DSTShiftForward:
		return candidates[0], nil
	}
	for _, candidate := range candidates {
		if !candidate.IsDST() {
			return candidate, nil
		}
	}
	return candidates[len(candidates)-1], nil
}

// wallCandidates returns instants, in ascending order, showing wall clock reading in location
func wallCandidates(wall time.Time, location *time.Location) []time.Time {
	_, before := wall.Add(-24 * time.Hour).In(location).Zone()
	_, after := wall.Add(24 * time.Hour).In(location).Zone()
	_, nominal := time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), location).Zone()

	var result []time.Time
	for _, offset := range []int{before, after, nominal} {
		instant := wall.Add(-time.Duration(offset) * time.Second).In(location)
		if !wallOf(instant).Equal(wall) || contains(result, instant) {
			continue
		}
		result = append(result, instant)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Before(result[j]) })
	return result
}

// abbreviationOffset returns the offset location uses under abbreviation around wall, i.e. EST or EDT in America/New_York
func abbreviationOffset(wall time.Time, location *time.Location, abbreviation string) (int, bool) {
	for _, instant := range []time.Time{wall, wall.AddDate(0, -6, 0), wall.AddDate(0, 6, 0)} {
		if name, offset := instant.In(location).Zone(); name == abbreviation {
			return offset, true
		}
	}
	return 0, false
}

func contains(instants []time.Time, instant time.Time) bool {
	for _, candidate := range instants {
		if candidate.Equal(instant) {
			return true
		}
	}
	return false
}
