// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayLayout is the text form of a Day.
const DayLayout = "2006-01-02"

// timestampLayout is the text form of a Timestamp with a time of day.
const timestampLayout = "2006-01-02T15:04:05"

// Day is a calendar date without a time zone. It is comparable and usable
// as a map key. The zero Day is "unset".
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDay parses "YYYY-MM-DD". Longer timestamp text is accepted and
// truncated to the date it names.
func ParseDay(s string) (Day, error) {
	ts, err := ParseTimestamp(s)
	if err != nil {
		return Day{}, err
	}
	return ts.Day(), nil
}

// MustParseDay is ParseDay for literals in tests and defaults. It panics on error.
func MustParseDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DayOf returns the calendar day of t as written in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is unset.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Time returns midnight UTC of d.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days.
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Ordinal returns the number of days from 1970-01-01 to d, negative for
// earlier days. It is plain integer arithmetic on the civil calendar and
// exact for any year, unlike differences of time.Time values.
func (d Day) Ordinal() int {
	y, m := d.Year, int(d.Month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era = (y - 399) / 400
	}
	yoe := y - era*400
	doy := (153*((m+9)%12)+2)/5 + d.Day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// DaysUntil returns the number of days from d to other; negative when other
// is earlier.
func (d Day) DaysUntil(other Day) int {
	return other.Ordinal() - d.Ordinal()
}

// Compare returns -1, 0 or +1.
func (d Day) Compare(other Day) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Day) Before(other Day) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d Day) After(other Day) bool { return d.Compare(other) > 0 }

// String formats d as YYYY-MM-DD; the zero Day formats as "".
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Timestamp is a record time as written in the source data.
//
// Fixtures mix "2035-02-01", "2035-02-01T06:30:00" and fractional-second
// forms. The wall clock is kept exactly as written and stored in UTC; an
// explicit offset is read but never converted, so Day always returns the
// date that appears in the text.
type Timestamp struct {
	time.Time
	dateOnly bool
}

var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	timestampLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// NewTimestamp returns t's wall clock as a Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: wallClockUTC(t)}
}

// TimestampOfDay returns midnight of d as a date-only Timestamp.
func TimestampOfDay(d Day) Timestamp {
	return Timestamp{Time: d.Time(), dateOnly: true}
}

// ParseTimestamp parses the date and date-time forms found in the fixtures.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.Parse(DayLayout, s); err == nil {
		return Timestamp{Time: t, dateOnly: true}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Timestamp{Time: wallClockUTC(t)}, nil
	}

	return Timestamp{}, fmt.Errorf("unrecognized timestamp %s", strconv.Quote(s))
}

// MustParseTimestamp is ParseTimestamp for literals. It panics on error.
func MustParseTimestamp(s string) Timestamp {
	ts, err := ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func wallClockUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)
}

// Day returns the calendar date of ts.
func (ts Timestamp) Day() Day {
	if ts.IsZero() {
		return Day{}
	}
	return DayOf(ts.Time)
}

// DateOnly reports whether ts was written without a time of day.
func (ts Timestamp) DateOnly() bool {
	return ts.dateOnly
}

// String formats ts in the form it was parsed from.
func (ts Timestamp) String() string {
	switch {
	case ts.IsZero():
		return ""
	case ts.dateOnly:
		return ts.Time.Format(DayLayout)
	case ts.Nanosecond() != 0:
		return ts.Time.Format("2006-01-02T15:04:05.999999")
	default:
		return ts.Time.Format(timestampLayout)
	}
}

// MarshalJSON writes ts as a JSON string, or null when unset.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(ts.String())), nil
}

// UnmarshalJSON accepts a date or date-time string, or null.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*ts = Timestamp{}
		return nil
	}
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}
	parsed, err := ParseTimestamp(unquoted)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
