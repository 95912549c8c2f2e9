// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Mode selects how the interval of a query is obtained.
type Mode string

const (
	ModePerson    Mode = "person"
	ModeDateRange Mode = "date"
)

// QueryFile is the on-disk form of a query and its results. Loading one
// replays the parameters against the source; the stored results are for
// reading only and are never fed back into a query.
type QueryFile struct {
	Query   QueryParams   `yaml:"query"`
	Results []ResultEntry `yaml:"results"`
	Summary QuerySummary  `yaml:"summary"`
}

// QueryParams stores the query parameters in a serializable form.
type QueryParams struct {
	Source string `yaml:"source,omitempty"`
	Mode   Mode   `yaml:"mode"`
	Person string `yaml:"person,omitempty"`
	Start  string `yaml:"start,omitempty"`
	End    string `yaml:"end,omitempty"`
}

// ResultEntry is one saved match.
type ResultEntry struct {
	Name      string `json:"name" yaml:"name"`
	DeathDate string `json:"death_date" yaml:"death_date"`
	Sortable  string `json:"normalized" yaml:"normalized"`
	Fidelity  string `json:"fidelity" yaml:"fidelity"`
}

// Entries flattens the matches of res for output.
func Entries(res Result) []ResultEntry {
	entries := make([]ResultEntry, 0, len(res.Matches))
	for _, m := range res.Matches {
		raw, _ := m.Record.Death()
		entries = append(entries, ResultEntry{
			Name:      m.Record.DisplayName(),
			DeathDate: raw,
			Sortable:  m.Death.String(),
			Fidelity:  string(m.Death.Fidelity),
		})
	}
	return entries
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Skipped   int       `yaml:"skipped"`
	Timestamp time.Time `yaml:"timestamp"`
}

// NewQueryFile builds a QueryFile from parameters and a result.
func NewQueryFile(params QueryParams, res Result, now time.Time) QueryFile {
	return QueryFile{
		Query:   params,
		Results: Entries(res),
		Summary: QuerySummary{
			Total:     len(res.Matches),
			Skipped:   len(res.Skipped),
			Timestamp: now,
		},
	}
}

// WriteQueryFile saves a query file as YAML.
func WriteQueryFile(path string, qf QueryFile) error {
	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	if err := qf.Query.Validate(); err != nil {
		return nil, fmt.Errorf("query file %s: %w", path, err)
	}
	return &qf, nil
}

// Validate reports whether the parameters describe a runnable query.
func (p QueryParams) Validate() error {
	switch p.Mode {
	case ModePerson:
		if p.Person == "" {
			return ErrEmptyName
		}
	case ModeDateRange:
		if p.Start == "" || p.End == "" {
			return fmt.Errorf("both start and end dates are required")
		}
	default:
		return fmt.Errorf("unknown query mode %q: use %q or %q", p.Mode, ModePerson, ModeDateRange)
	}
	return nil
}
