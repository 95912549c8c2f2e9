// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deathrange/pkg/types"
)

func ptr(s string) *string { return &s }

func TestFromFile(t *testing.T) {
	records, summary, err := FromFile(filepath.Join("testdata", "family.ged"))
	require.NoError(t, err)

	want := []types.IndividualRecord{
		{XRef: "@I1@", Name: ptr("John Smith"), BirthDate: ptr("12 JAN 1900"), DeathDate: ptr("3 MAR 1950")},
		// BIRT is followed by PLAC, so the birth DATE is not directly nested
		// under the event and is dropped.
		{XRef: "@I2@", Name: ptr("Mary Jones"), DeathDate: ptr("ABT 1961")},
		{XRef: "@I3@", Name: ptr("Thomas Smith"), BirthDate: ptr("1925")},
		{XRef: "@I4@"},
	}
	assert.Equal(t, want, records)

	assert.Equal(t, 4, summary.Individuals)
	assert.Equal(t, 3, summary.OtherRecords) // HEAD, FAM, TRLR
	assert.Equal(t, 6, summary.Total())
}

func TestFromFile_Missing(t *testing.T) {
	_, _, err := FromFile(filepath.Join(t.TempDir(), "absent.ged"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "opening source")
}

func TestRecords_ContextRule(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantBirth *string
		wantDeath *string
	}{
		{
			name:      "date after death event is a death date",
			body:      "1 DEAT\n2 DATE 1 JAN 1950\n",
			wantDeath: ptr("1 JAN 1950"),
		},
		{
			name:      "date after birth event is a birth date",
			body:      "1 BIRT\n2 DATE 1 JAN 1900\n",
			wantBirth: ptr("1 JAN 1900"),
		},
		{
			name: "date under another event is dropped",
			body: "1 BURI\n2 DATE 5 JAN 1950\n",
		},
		{
			name: "date with no preceding event is dropped",
			body: "1 NAME A /B/\n2 DATE 5 JAN 1950\n",
		},
		{
			name:      "second date after an event is dropped",
			body:      "1 DEAT\n2 DATE 1950\n2 DATE 1951\n",
			wantDeath: ptr("1950"),
		},
		{
			name:      "event tag with a value still opens the event",
			body:      "1 DEAT Y\n2 DATE 1950\n",
			wantDeath: ptr("1950"),
		},
		{
			name: "blank line closes the event",
			body: "1 DEAT\n\n2 DATE 1950\n",
		},
		{
			name: "date without a value is skipped",
			body: "1 DEAT\n2 DATE\n",
		},
		{
			name:      "both events",
			body:      "1 BIRT\n2 DATE 2 FEB 1800\n1 DEAT\n2 DATE 3 MAR 1870\n",
			wantBirth: ptr("2 FEB 1800"),
			wantDeath: ptr("3 MAR 1870"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "0 @I1@ INDI\n" + tt.body + "0 TRLR\n"
			records, _, err := Records(strings.NewReader(src))
			require.NoError(t, err)
			require.Len(t, records, 1)

			assert.Equal(t, tt.wantBirth, records[0].BirthDate)
			assert.Equal(t, tt.wantDeath, records[0].DeathDate)
		})
	}
}

func TestRecords_Names(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"1 NAME John /Smith/", "John Smith"},
		{"1 NAME /Smith/", "Smith"},
		{"1 NAME John   Quincy  /Adams/ Jr", "John Quincy Adams Jr"},
		{"1 NAME Anne/Boleyn/", "Anne Boleyn"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			records, _, err := Records(strings.NewReader("0 @I1@ INDI\n" + tt.line + "\n"))
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0].DisplayName())
		})
	}
}

func TestRecords_LaterNameWins(t *testing.T) {
	src := "0 @I1@ INDI\n1 NAME First /Name/\n1 NAME Second /Name/\n"
	records, _, err := Records(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Second Name", records[0].DisplayName())
}

func TestRecords_Boundaries(t *testing.T) {
	src := strings.Join([]string{
		"\ufeff0 HEAD",
		"1 NAME Header Name",
		"0 @I1@ INDI",
		"1 NAME A /One/",
		"0 @F1@ FAM",
		"1 NAME Not /Aperson/",
		"0 @I2@ INDI",
		"1 NAME B /Two/",
		"0 @S1@ SOUR",
		"0 @I3@ INDI",
		"",
	}, "\r\n")

	records, summary, err := Records(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "A One", records[0].DisplayName())
	assert.Equal(t, "B Two", records[1].DisplayName())
	assert.Nil(t, records[2].Name)
	assert.Equal(t, "@I3@", records[2].XRef)
	assert.Equal(t, 3, summary.Individuals)
	assert.Equal(t, 3, summary.OtherRecords)
}

func TestRecords_Empty(t *testing.T) {
	records, summary, err := Records(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, summary.Total())
}

func TestRecords_MalformedLinesAreSkipped(t *testing.T) {
	src := "0 @I1@ INDI\n1\nNAME\n1 NAME Kept /Name/\n   \n2 DATE orphan\n"
	records, summary, err := Records(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Kept Name", records[0].DisplayName())
	assert.Nil(t, records[0].BirthDate)
	assert.Nil(t, records[0].DeathDate)
	assert.Equal(t, 4, summary.SkippedLines)
}
