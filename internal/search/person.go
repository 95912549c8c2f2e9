// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/deathrange/pkg/types"
)

var (
	// ErrPersonNotFound is returned when no record name contains the fragment.
	ErrPersonNotFound = errors.New("person not found")

	// ErrEmptyName is returned for a blank name fragment.
	ErrEmptyName = errors.New("name is empty")

	// ErrMissingBound is returned when a record lacks a date and the
	// supplier gave no substitute.
	ErrMissingBound = errors.New("missing date bound")
)

// FindPerson returns the first record, in input order, whose name contains
// fragment ignoring case. Records without a name never match.
func FindPerson(fragment string, records []types.IndividualRecord) (types.IndividualRecord, error) {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(fragment))
	if needle == "" {
		return types.IndividualRecord{}, ErrEmptyName
	}

	for _, rec := range records {
		if rec.Name == nil {
			continue
		}
		if strings.Contains(fold.String(*rec.Name), needle) {
			return rec, nil
		}
	}
	return types.IndividualRecord{}, fmt.Errorf("%w: %q", ErrPersonNotFound, fragment)
}

// BoundSupplier provides substitute raw date text when a person lacks a
// birth (BoundStart) or death (BoundEnd) date.
type BoundSupplier interface {
	SupplyBound(rec types.IndividualRecord, bound Bound) (string, error)
}

// BoundSupplierFunc adapts a function to BoundSupplier.
type BoundSupplierFunc func(rec types.IndividualRecord, bound Bound) (string, error)

// SupplyBound calls f.
func (f BoundSupplierFunc) SupplyBound(rec types.IndividualRecord, bound Bound) (string, error) {
	return f(rec, bound)
}

// Bounds is a raw date interval derived from one person.
type Bounds struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`

	// StartSupplied and EndSupplied mark values that came from the
	// supplier rather than the record.
	StartSupplied bool `json:"start_supplied,omitempty" yaml:"start_supplied,omitempty"`
	EndSupplied   bool `json:"end_supplied,omitempty" yaml:"end_supplied,omitempty"`
}

// PersonBounds takes the interval from rec's own birth and death text.
// A missing side is requested from supply; a nil supplier or an empty
// answer yields ErrMissingBound. Nothing is invented here.
func PersonBounds(rec types.IndividualRecord, supply BoundSupplier) (Bounds, error) {
	var b Bounds
	var err error

	if raw, ok := rec.Birth(); ok {
		b.Start = raw
	} else {
		if b.Start, err = supplyBound(rec, BoundStart, supply); err != nil {
			return Bounds{}, err
		}
		b.StartSupplied = true
	}

	if raw, ok := rec.Death(); ok {
		b.End = raw
	} else {
		if b.End, err = supplyBound(rec, BoundEnd, supply); err != nil {
			return Bounds{}, err
		}
		b.EndSupplied = true
	}

	return b, nil
}

func supplyBound(rec types.IndividualRecord, bound Bound, supply BoundSupplier) (string, error) {
	if supply == nil {
		return "", fmt.Errorf("%w: %s has no %s date", ErrMissingBound, rec.DisplayName(), eventFor(bound))
	}
	raw, err := supply.SupplyBound(rec, bound)
	if err != nil {
		return "", fmt.Errorf("supplying %s bound: %w", bound, err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: %s has no %s date", ErrMissingBound, rec.DisplayName(), eventFor(bound))
	}
	return raw, nil
}

func eventFor(bound Bound) string {
	if bound == BoundStart {
		return "birth"
	}
	return "death"
}
