// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package datenorm converts free-form genealogical date text into comparable
// calendar dates. Each input runs through an ordered list of parse attempts,
// from the most precise structured layout down to a bare embedded year, and
// the result records which precision survived.
package datenorm

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/pdiddy/deathrange/pkg/types"
)

// MinModernYear is the lowest year accepted by the all-digits shortcut.
const MinModernYear = 1900

// Attempt names, in evaluation order.
const (
	AttemptModernYear   = "modern-year"
	AttemptDayMonthYear = "day-month-year"
	AttemptMonthYear    = "month-year"
	AttemptYear         = "year"
	AttemptDayYear      = "day-year"
	AttemptISO          = "iso"
	AttemptEmbeddedYear = "embedded-year"
)

// ErrUnparsable is matched by every *ParseError via errors.Is.
var ErrUnparsable = errors.New("unparsable date")

// ParseError reports date text that no attempt could interpret.
type ParseError struct {
	Raw       string
	Canonical string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date format: %q", e.Raw)
}

func (e *ParseError) Unwrap() error { return ErrUnparsable }

// attempt is one stage of the fallback chain. parse receives the canonical
// text and reports whether it matched.
type attempt struct {
	name  string
	parse func(n *Normalizer, s string) (types.NormalizedDate, bool)
}

// layoutAttempt matches s against a time layout and tags the result with f.
func layoutAttempt(name, layout string, f types.Fidelity) attempt {
	return attempt{
		name: name,
		parse: func(_ *Normalizer, s string) (types.NormalizedDate, bool) {
			t, err := time.Parse(layout, s)
			if err != nil || t.Year() < 1 {
				return types.NormalizedDate{}, false
			}
			return types.DateFromTime(t, f), true
		},
	}
}

var yearPattern = regexp.MustCompile(`\d{4}`)

var attempts = []attempt{
	{name: AttemptModernYear, parse: (*Normalizer).modernYear},
	layoutAttempt(AttemptDayMonthYear, "2 Jan 2006", types.FidelityExactDay),
	layoutAttempt(AttemptMonthYear, "Jan 2006", types.FidelityMonth),
	layoutAttempt(AttemptYear, "2006", types.FidelityYear),
	// Legacy positional form such as "21 1995": read as day 21 of January.
	// It is ambiguous and deliberately kept to exactly this shape.
	layoutAttempt(AttemptDayYear, "2 2006", types.FidelityYear),
	layoutAttempt(AttemptISO, "2006-1-2", types.FidelityExactDay),
	{name: AttemptEmbeddedYear, parse: embeddedYear},
}

// Normalizer turns raw date text into NormalizedDate values. The zero value
// is not useful; construct one with New.
type Normalizer struct {
	currentYear int
}

// New returns a Normalizer whose all-digits shortcut accepts years from
// MinModernYear through currentYear.
func New(currentYear int) *Normalizer {
	return &Normalizer{currentYear: currentYear}
}

// CurrentYear reports the upper bound of the modern-year shortcut.
func (n *Normalizer) CurrentYear() int { return n.currentYear }

// Normalize parses raw. On failure the error is a *ParseError.
func (n *Normalizer) Normalize(raw string) (types.NormalizedDate, error) {
	d, _, err := n.Explain(raw)
	return d, err
}

// Explain is Normalize plus the name of the attempt that matched.
func (n *Normalizer) Explain(raw string) (types.NormalizedDate, string, error) {
	s := Canonicalize(raw)
	for _, a := range attempts {
		if d, ok := a.parse(n, s); ok {
			return d, a.name, nil
		}
	}
	return types.NormalizedDate{}, "", &ParseError{Raw: raw, Canonical: s}
}

func (n *Normalizer) modernYear(s string) (types.NormalizedDate, bool) {
	if !isDigits(s) {
		return types.NormalizedDate{}, false
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < MinModernYear || year > n.currentYear {
		return types.NormalizedDate{}, false
	}
	return types.NormalizedDate{Year: year, Month: time.January, Day: 1, Fidelity: types.FidelityYear}, true
}

func embeddedYear(_ *Normalizer, s string) (types.NormalizedDate, bool) {
	m := yearPattern.FindString(s)
	if m == "" {
		return types.NormalizedDate{}, false
	}
	year, _ := strconv.Atoi(m)
	if year < 1 {
		return types.NormalizedDate{}, false
	}
	return types.NormalizedDate{Year: year, Month: time.January, Day: 1, Fidelity: types.FidelityInferredYear}, true
}
