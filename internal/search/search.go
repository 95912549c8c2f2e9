// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search answers "who died between these dates" over extracted
// individual records, with bounds given directly or taken from one
// person's own birth and death.
package search

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pdiddy/deathrange/pkg/types"
)

// Normalizer converts raw date text to a comparable date.
// *datenorm.Normalizer satisfies it.
type Normalizer interface {
	Normalize(raw string) (types.NormalizedDate, error)
}

// Bound names which end of an interval a value belongs to.
type Bound string

const (
	BoundStart Bound = "start"
	BoundEnd   Bound = "end"
)

// BoundError reports an interval bound whose text could not be normalized.
type BoundError struct {
	Bound Bound
	Raw   string
	Err   error
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("%s bound %q: %v", e.Bound, e.Raw, e.Err)
}

func (e *BoundError) Unwrap() error { return e.Err }

// Match is a record whose death date fell inside the interval.
type Match struct {
	Record types.IndividualRecord `json:"record" yaml:"record"`
	Death  types.NormalizedDate   `json:"death" yaml:"death"`
}

// Skip is a record left out because its death date could not be normalized.
type Skip struct {
	Record types.IndividualRecord `json:"record" yaml:"record"`
	Err    error                  `json:"-" yaml:"-"`
}

// Result holds the outcome of DeathsInRange.
type Result struct {
	Start   types.NormalizedDate
	End     types.NormalizedDate
	Matches []Match
	Skipped []Skip
}

// DeathsInRange returns the records whose death date normalizes to a value
// within [start, end], ascending by death date. Records that tie keep their
// input order. If either bound fails to normalize the result is empty and
// the error is a *BoundError; no bound is guessed.
func DeathsInRange(n Normalizer, start, end string, records []types.IndividualRecord) (Result, error) {
	s, err := n.Normalize(start)
	if err != nil {
		return Result{}, &BoundError{Bound: BoundStart, Raw: start, Err: err}
	}
	e, err := n.Normalize(end)
	if err != nil {
		return Result{}, &BoundError{Bound: BoundEnd, Raw: end, Err: err}
	}

	res := Result{Start: s, End: e}
	for _, rec := range records {
		raw, ok := rec.Death()
		if !ok {
			continue
		}
		d, err := n.Normalize(raw)
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{Record: rec, Err: err})
			continue
		}
		if d.Compare(s) >= 0 && d.Compare(e) <= 0 {
			res.Matches = append(res.Matches, Match{Record: rec, Death: d})
		}
	}

	sort.SliceStable(res.Matches, func(i, j int) bool {
		return res.Matches[i].Death.Compare(res.Matches[j].Death) < 0
	})

	return res, nil
}

// IsBoundError reports whether err came from an unparsable interval bound.
func IsBoundError(err error) bool {
	var be *BoundError
	return errors.As(err, &be)
}
