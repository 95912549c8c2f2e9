// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package datenorm

import "strings"

// monthReplacer maps full English month names to the three-letter forms the
// structured layouts expect. MAY is already short.
var monthReplacer = strings.NewReplacer(
	"JANUARY", "JAN",
	"FEBRUARY", "FEB",
	"MARCH", "MAR",
	"APRIL", "APR",
	"JUNE", "JUN",
	"JULY", "JUL",
	"AUGUST", "AUG",
	"SEPTEMBER", "SEP",
	"OCTOBER", "OCT",
	"NOVEMBER", "NOV",
	"DECEMBER", "DEC",
)

var punctuationReplacer = strings.NewReplacer(".", "", ",", "")

// Canonicalize trims raw, removes periods and commas, uppercases it and
// abbreviates full month names. "March 3, 1950." becomes "MAR 3 1950".
func Canonicalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = punctuationReplacer.Replace(s)
	s = strings.ToUpper(s)
	return monthReplacer.Replace(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
