// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt supplies substitute interval bounds for a person who lacks
// a birth or death date, either from preset values or by asking on a
// terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/deathrange/internal/search"
	"github.com/pdiddy/deathrange/pkg/types"
)

// ErrNoInput is returned when input ends before an answer is read.
var ErrNoInput = errors.New("no input")

// Prompter asks questions on out and reads one line per answer from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes question and returns the trimmed answer line.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
		// Last line without a trailing newline.
	case errors.Is(err, io.EOF):
		return "", ErrNoInput
	default:
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// SupplyBound asks for the date rec is missing.
func (p *Prompter) SupplyBound(rec types.IndividualRecord, bound search.Bound) (string, error) {
	return p.Ask(question(rec, bound))
}

func question(rec types.IndividualRecord, bound search.Bound) string {
	name := rec.DisplayName()
	if name == "" {
		name = "This person"
	}
	if bound == search.BoundStart {
		return fmt.Sprintf("%s doesn't have a birth date. Please provide a start date (e.g. '12 JAN 2000'): ", name)
	}
	return fmt.Sprintf("%s doesn't have a death date. Please provide an end date (e.g. '12 JAN 2010'): ", name)
}

// Preset answers from fixed values and defers to Next for any bound left
// empty. A nil Next leaves the bound unanswered.
type Preset struct {
	Start string
	End   string
	Next  search.BoundSupplier
}

// SupplyBound returns the preset value for bound or asks Next.
func (p Preset) SupplyBound(rec types.IndividualRecord, bound search.Bound) (string, error) {
	v := p.End
	if bound == search.BoundStart {
		v = p.Start
	}
	if v != "" || p.Next == nil {
		return v, nil
	}
	return p.Next.SupplyBound(rec, bound)
}
