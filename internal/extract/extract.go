// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reconstructs individual records from GEDCOM text.
// Only the individual boundary and the NAME, BIRT, DEAT and DATE tags are
// consumed; every other line is skipped without complaint.
package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/deathrange/pkg/types"
)

// Tags consumed by the extractor.
const (
	tagIndividual = "INDI"
	tagName       = "NAME"
	tagBirth      = "BIRT"
	tagDeath      = "DEAT"
	tagDate       = "DATE"
)

const maxLineSize = 1 << 20

// eventContext is the open event a following DATE line belongs to.
type eventContext int

const (
	eventNone eventContext = iota
	eventBirth
	eventDeath
)

// Summary holds counts from one extraction pass.
type Summary struct {
	Individuals  int
	OtherRecords int
	SkippedLines int
}

// Total returns the number of level-0 records seen.
func (s Summary) Total() int {
	return s.Individuals + s.OtherRecords
}

// FromFile opens path and extracts its individual records. An unreadable
// file is the only fatal condition.
func FromFile(path string) ([]types.IndividualRecord, Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("opening source %s: %w", path, err)
	}
	defer f.Close()

	return Records(f)
}

// Records scans r and returns one record per individual block in source
// order. Records are emitted even when the block carried no name or dates.
func Records(r io.Reader) ([]types.IndividualRecord, Summary, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		records []types.IndividualRecord
		summary Summary
		b       *blockBuilder
	)

	flush := func() {
		if b != nil {
			records = append(records, b.rec)
			b = nil
		}
	}

	for sc.Scan() {
		line := strings.TrimPrefix(sc.Text(), "\ufeff")
		fields := strings.Fields(line)

		if len(fields) > 0 && fields[0] == "0" {
			flush()
			if xref, ok := individualHeader(fields); ok {
				b = &blockBuilder{rec: types.IndividualRecord{XRef: xref}}
				summary.Individuals++
			} else {
				summary.OtherRecords++
			}
			continue
		}

		if b == nil {
			continue
		}
		if !b.consume(fields) {
			summary.SkippedLines++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, summary, fmt.Errorf("reading source: %w", err)
	}
	flush()

	return records, summary, nil
}

// individualHeader reports whether a level-0 line opens an individual
// block ("0 @I1@ INDI") and returns its cross-reference id.
func individualHeader(fields []string) (string, bool) {
	if len(fields) < 3 || fields[2] != tagIndividual {
		return "", false
	}
	xref := fields[1]
	if !strings.HasPrefix(xref, "@") || !strings.HasSuffix(xref, "@") {
		return "", false
	}
	return xref, true
}

// blockBuilder accumulates one individual record. ctx holds the event
// opened by the previous line and is reset by every line that is not an
// event tag, so a DATE only binds when it directly follows BIRT or DEAT.
type blockBuilder struct {
	rec types.IndividualRecord
	ctx eventContext
}

// consume applies one line and reports whether it contributed anything.
func (b *blockBuilder) consume(fields []string) bool {
	ctx := b.ctx
	b.ctx = eventNone

	if len(fields) < 2 {
		return false
	}

	switch fields[1] {
	case tagBirth:
		b.ctx = eventBirth
		return true
	case tagDeath:
		b.ctx = eventDeath
		return true
	}

	if len(fields) < 3 {
		return false
	}
	value := strings.Join(fields[2:], " ")

	switch fields[1] {
	case tagName:
		name := strings.TrimSpace(strings.Join(strings.Fields(strings.ReplaceAll(value, "/", " ")), " "))
		b.rec.Name = &name
		return true
	case tagDate:
		switch ctx {
		case eventBirth:
			b.rec.BirthDate = &value
			return true
		case eventDeath:
			b.rec.DeathDate = &value
			return true
		}
	}
	return false
}
