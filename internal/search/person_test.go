// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deathrange/pkg/types"
)

func TestFindPerson(t *testing.T) {
	records := []types.IndividualRecord{
		{XRef: "@I0@"},
		person("John Smith", "1900", "1950"),
		person("Jane Smithers", "1905", "1970"),
		person("Jürgen Groß", "1880", "1940"),
	}

	tests := []struct {
		fragment string
		want     string
		err      error
	}{
		{"smith", "John Smith", nil},
		{"SMITHERS", "Jane Smithers", nil},
		{"  jane ", "Jane Smithers", nil},
		{"GROSS", "Jürgen Groß", nil},
		{"jürgen", "Jürgen Groß", nil},
		{"nobody", "", ErrPersonNotFound},
		{"", "", ErrEmptyName},
		{"   ", "", ErrEmptyName},
	}
	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			rec, err := FindPerson(tt.fragment, records)
			if tt.err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.DisplayName())
		})
	}
}

func TestPersonBounds(t *testing.T) {
	supplied := map[Bound]string{BoundStart: "1 JAN 1800", BoundEnd: " 31 DEC 1999 "}
	var asked []Bound
	supply := BoundSupplierFunc(func(rec types.IndividualRecord, b Bound) (string, error) {
		asked = append(asked, b)
		return supplied[b], nil
	})

	tests := []struct {
		name  string
		rec   types.IndividualRecord
		want  Bounds
		asked []Bound
	}{
		{
			name:  "both dates present",
			rec:   person("A", "1900", "1950"),
			want:  Bounds{Start: "1900", End: "1950"},
			asked: nil,
		},
		{
			name:  "missing birth",
			rec:   person("A", "", "1950"),
			want:  Bounds{Start: "1 JAN 1800", End: "1950", StartSupplied: true},
			asked: []Bound{BoundStart},
		},
		{
			name:  "missing death",
			rec:   person("A", "1900", ""),
			want:  Bounds{Start: "1900", End: "31 DEC 1999", EndSupplied: true},
			asked: []Bound{BoundEnd},
		},
		{
			name:  "missing both",
			rec:   person("A", "", ""),
			want:  Bounds{Start: "1 JAN 1800", End: "31 DEC 1999", StartSupplied: true, EndSupplied: true},
			asked: []Bound{BoundStart, BoundEnd},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asked = nil
			got, err := PersonBounds(tt.rec, supply)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.asked, asked)
		})
	}
}

func TestPersonBounds_NoSubstitute(t *testing.T) {
	_, err := PersonBounds(person("A", "", "1950"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingBound))
	assert.Contains(t, err.Error(), "birth")

	empty := BoundSupplierFunc(func(types.IndividualRecord, Bound) (string, error) { return "  ", nil })
	_, err = PersonBounds(person("A", "1900", ""), empty)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingBound))
	assert.Contains(t, err.Error(), "death")

	boom := errors.New("stdin closed")
	failing := BoundSupplierFunc(func(types.IndividualRecord, Bound) (string, error) { return "", boom })
	_, err = PersonBounds(person("A", "", ""), failing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}
