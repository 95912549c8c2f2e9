// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// Fidelity records how much of a normalized date was read from the source
// text rather than defaulted or inferred.
type Fidelity string

const (
	FidelityExactDay     Fidelity = "exact-day"
	FidelityMonth        Fidelity = "month-precision"
	FidelityYear         Fidelity = "year-precision"
	FidelityInferredYear Fidelity = "inferred-year-only"
)

// NormalizedDate is a comparable calendar date derived from raw date text.
// Month and day default to January and 1 when the text lacked them.
type NormalizedDate struct {
	Year     int        `json:"year" yaml:"year"`
	Month    time.Month `json:"month" yaml:"month"`
	Day      int        `json:"day" yaml:"day"`
	Fidelity Fidelity   `json:"fidelity" yaml:"fidelity"`
}

// DateFromTime builds a NormalizedDate from the calendar fields of t.
func DateFromTime(t time.Time, f Fidelity) NormalizedDate {
	y, m, d := t.Date()
	return NormalizedDate{Year: y, Month: m, Day: d, Fidelity: f}
}

// Compare orders two dates by calendar position. Fidelity is ignored.
// It returns -1, 0 or +1.
func (d NormalizedDate) Compare(other NormalizedDate) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Time returns the date as midnight UTC.
func (d NormalizedDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String renders the date as YYYY-MM-DD.
func (d NormalizedDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
