package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"7pm", "19:00"},
		{"7 pm", "19:00"},
		{"7:30pm", "19:30"},
		{"7:30 PM", "19:30"},
		{"12pm", "12:00"},
		{"12am", "00:00"},
		{"11am", "11:00"},
		{"19:00", "19:00"},
		{"19", "19:00"},
		{"9:05", "09:05"},
		{"  19:00  ", "19:00"},
		{"25:00", ""},
		{"19:75", ""},
		{"13pm", ""},
		{"0pm", ""},
		{"0am", ""},
		{"13:30pm", ""},
		{"evening", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeTime(tc.input), "input %q", tc.input)
	}
}

func TestNormalizeDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	cases := []struct {
		input string
		want  string
	}{
		{"today", "2026-03-15"},
		{"Tomorrow", "2026-03-16"},
		{"2026-12-24", "2026-12-24"},
		{"2026-2-3", "2026-02-03"},
		{"24.12", "2026-12-24"},
		{"24/12", "2026-12-24"},
		{"24-12", "2026-12-24"},
		{"24.12.25", "2025-12-24"},
		{"24.12.2026", "2026-12-24"},
		// Already passed this year, so next year is assumed.
		{"1.2", "2027-02-01"},
		{"8 aug", "2026-08-08"},
		{"8 august", "2026-08-08"},
		{"aug 8", "2026-08-08"},
		{"August 8 2027", "2027-08-08"},
		{"1 jan", "2027-01-01"},
		{"31.04", ""},
		{"2026-02-30", ""},
		{"32.01", ""},
		{"13.13", ""},
		{"sometime", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeDate(tc.input, now), "input %q", tc.input)
	}
}

func TestDateOnOrAfter(t *testing.T) {
	now := time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)

	assert.True(t, dateOnOrAfter("2026-03-15", now), "same day counts even late in the evening")
	assert.True(t, dateOnOrAfter("2026-03-16", now))
	assert.False(t, dateOnOrAfter("2026-03-14", now))
	assert.False(t, dateOnOrAfter("not-a-date", now))
}
