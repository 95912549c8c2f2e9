// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders query results and extracted records as plain
// text, tables, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deathrange/internal/search"
	"github.com/pdiddy/deathrange/pkg/types"
)

// Deaths is a rendered range query: the raw bounds as the user gave them
// and the matches in death-date order.
type Deaths struct {
	Start   string               `json:"start" yaml:"start"`
	End     string               `json:"end" yaml:"end"`
	Person  string               `json:"person,omitempty" yaml:"person,omitempty"`
	Results []search.ResultEntry `json:"results" yaml:"results"`
}

// NewDeaths builds a Deaths report from raw bounds and a query result.
func NewDeaths(start, end string, res search.Result) Deaths {
	return Deaths{Start: start, End: end, Results: search.Entries(res)}
}

// RenderDeaths writes d to w in the given format.
func RenderDeaths(w io.Writer, format types.OutputFormat, d Deaths) error {
	switch format {
	case types.OutputText, "":
		return deathsText(w, d)
	case types.OutputTable:
		return deathsTable(w, d)
	case types.OutputJSON:
		return writeJSON(w, d)
	case types.OutputYAML:
		return writeYAML(w, d)
	default:
		return unsupported(format)
	}
}

func deathsText(w io.Writer, d Deaths) error {
	if len(d.Results) == 0 {
		_, err := fmt.Fprintf(w, "No deaths found between %s and %s.\n", d.Start, d.End)
		return err
	}
	if _, err := fmt.Fprintf(w, "People who died between %s and %s:\n", d.Start, d.End); err != nil {
		return err
	}
	for _, r := range d.Results {
		if _, err := fmt.Fprintf(w, "Name: %s, Death Date: %s\n", r.Name, r.DeathDate); err != nil {
			return err
		}
	}
	return nil
}

func deathsTable(w io.Writer, d Deaths) error {
	if len(d.Results) == 0 {
		_, err := fmt.Fprintf(w, "No deaths found between %s and %s.\n", d.Start, d.End)
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("Deaths between %s and %s", d.Start, d.End))
	t.AppendHeader(table.Row{"#", "Name", "Death Date", "Normalized", "Fidelity"})
	for i, r := range d.Results {
		t.AppendRow(table.Row{i + 1, r.Name, r.DeathDate, r.Sortable, r.Fidelity})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d results", len(d.Results))})
	t.Render()
	return nil
}

// RecordEntry is one extracted record flattened for output.
type RecordEntry struct {
	XRef      string `json:"xref,omitempty" yaml:"xref,omitempty"`
	Name      string `json:"name" yaml:"name"`
	BirthDate string `json:"birth_date,omitempty" yaml:"birth_date,omitempty"`
	DeathDate string `json:"death_date,omitempty" yaml:"death_date,omitempty"`
}

// RenderRecords writes extracted records to w in the given format.
func RenderRecords(w io.Writer, format types.OutputFormat, records []types.IndividualRecord) error {
	entries := make([]RecordEntry, len(records))
	for i, rec := range records {
		birth, _ := rec.Birth()
		death, _ := rec.Death()
		entries[i] = RecordEntry{XRef: rec.XRef, Name: rec.DisplayName(), BirthDate: birth, DeathDate: death}
	}

	switch format {
	case types.OutputText, "":
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.XRef, e.Name, e.BirthDate, e.DeathDate); err != nil {
				return err
			}
		}
		return nil
	case types.OutputTable:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"XRef", "Name", "Birth", "Death"})
		for _, e := range entries {
			t.AppendRow(table.Row{e.XRef, e.Name, e.BirthDate, e.DeathDate})
		}
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d individuals", len(entries))})
		t.Render()
		return nil
	case types.OutputJSON:
		return writeJSON(w, entries)
	case types.OutputYAML:
		return writeYAML(w, entries)
	default:
		return unsupported(format)
	}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case types.OutputText, types.OutputTable, types.OutputJSON, types.OutputYAML:
		return f, nil
	case "":
		return types.OutputText, nil
	default:
		return "", unsupported(f)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

func unsupported(f types.OutputFormat) error {
	return fmt.Errorf("unsupported format %q: use text, table, json or yaml", f)
}
