package time

import (
	"fmt"
	"time"
)

const maxOffset = 14 * 3600

// Fields represents parsed wall clock components with optional UTC offset
type Fields struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int

	//Offset in seconds east of UTC, valid when HasOffset
	Offset    int
	HasOffset bool
	//Abbreviation holds a zone name, i.e. "EST", whose offset depends on the location; set only when HasOffset is false
	Abbreviation string

	Weekday    time.Weekday
	HasWeekday bool

	HasYear  bool
	HasMonth bool
	HasDay   bool
}

// FieldsOf returns wall clock fields of t, including its zone offset
func FieldsOf(t time.Time) Fields {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	_, offset := t.Zone()
	return Fields{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second, Nanosecond: t.Nanosecond(),
		Offset: offset, HasOffset: true,
		HasYear: true, HasMonth: true, HasDay: true,
	}
}

// HasDate returns true if any date component was parsed
func (f *Fields) HasDate() bool {
	return f.HasYear || f.HasMonth || f.HasDay
}

// Wall returns wall clock reading as UTC based time
func (f *Fields) Wall() time.Time {
	return time.Date(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Nanosecond, time.UTC)
}

// Instant returns the absolute time, fields have to carry offset
func (f *Fields) Instant() time.Time {
	return f.Wall().Add(-time.Duration(f.Offset) * time.Second)
}

// Resolve fills missing date components from today and validates the result.
// Input without any date component takes today's date, otherwise a missing
// year defaults to today's year and missing month or day to 1.
func (f Fields) Resolve(today time.Time) (Fields, error) {
	if !f.HasDate() {
		f.Year, f.Month, f.Day = today.Date()
	} else {
		if !f.HasYear {
			f.Year = today.Year()
		}
		if !f.HasMonth {
			f.Month = time.January
		}
		if !f.HasDay {
			f.Day = 1
		}
	}
	f.HasYear, f.HasMonth, f.HasDay = true, true, true
	if err := f.validate(); err != nil {
		return f, err
	}
	return f, nil
}

func (f *Fields) validate() error {
	if f.Year < 1 || f.Year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidDate, f.Year)
	}
	if f.Month < time.January || f.Month > time.December {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidDate, f.Month)
	}
	if days := daysIn(f.Month, f.Year); f.Day < 1 || f.Day > days {
		return fmt.Errorf("%w: day %d out of range for %v %d", ErrInvalidDate, f.Day, f.Month, f.Year)
	}
	if f.Hour < 0 || f.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range", ErrInvalidDate, f.Hour)
	}
	if f.Minute < 0 || f.Minute > 59 {
		return fmt.Errorf("%w: minute %d out of range", ErrInvalidDate, f.Minute)
	}
	if f.Second < 0 || f.Second > 59 {
		return fmt.Errorf("%w: second %d out of range", ErrInvalidDate, f.Second)
	}
	if f.HasOffset && (f.Offset > maxOffset || f.Offset < -maxOffset) {
		return fmt.Errorf("%w: offset %ds out of range", ErrInvalidDate, f.Offset)
	}
	if f.HasWeekday {
		if actual := f.Wall().Weekday(); actual != f.Weekday {
			return fmt.Errorf("%w: %v %d %d is %v, not %v", ErrInvalidDate, f.Month, f.Day, f.Year, actual, f.Weekday)
		}
	}
	return nil
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
