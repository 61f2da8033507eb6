package reservation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Normalizers convert loosely formatted user text into canonical slot values.
// They are pure; "now" must already be in the pub's time zone. An empty
// string means the input did not parse.

var (
	timeAmPmRe   = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)
	timeHHMMRe   = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?$`)
	dateISORe    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dateDMRe     = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})(?:[./-](\d{2,4}))?$`)
	dayMonthRe   = regexp.MustCompile(`^(\d{1,2})\s+([a-z]+)(?:\s+(\d{2,4}))?$`)
	monthDayRe   = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:\s+(\d{2,4}))?$`)
)

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// NormalizeTime accepts "7pm", "19:00", "19", "7:30 pm" and returns "HH:MM".
func NormalizeTime(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))

	if m := timeAmPmRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h < 1 || h > 12 {
			return ""
		}
		min := 0
		if m[2] != "" {
			min, _ = strconv.Atoi(m[2])
		}
		switch m[3] {
		case "pm":
			if h < 12 {
				h += 12
			}
		case "am":
			if h == 12 {
				h = 0
			}
		}
		if h < 0 || h > 23 || min < 0 || min > 59 {
			return ""
		}
		return fmt.Sprintf("%02d:%02d", h, min)
	}

	if m := timeHHMMRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min := 0
		if m[2] != "" {
			min, _ = strconv.Atoi(m[2])
		}
		if h < 0 || h > 23 || min < 0 || min > 59 {
			return ""
		}
		return fmt.Sprintf("%02d:%02d", h, min)
	}

	return ""
}

// NormalizeDate accepts "today"/"tomorrow", ISO dates, European day-first
// forms and natural month names, returning "YYYY-MM-DD". When the year is
// omitted it picks the nearest future occurrence of that month/day. Past-date
// rejection is the caller's job.
func NormalizeDate(input string, now time.Time) string {
	s := strings.ToLower(strings.TrimSpace(input))

	switch s {
	case "today":
		return now.Format("2006-01-02")
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	}

	if m := dateISORe.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if isValidYMD(y, mo, d) {
			return fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
		}
		return ""
	}

	// DD[./-]MM with optional year
	if m := dateDMRe.FindStringSubmatch(s); m != nil {
		d, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		y := 0
		if m[3] != "" {
			y = normalizeYear(m[3])
		} else {
			y = pickFutureYear(now, mo, d)
		}
		if isValidYMD(y, mo, d) {
			return fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
		}
		return ""
	}

	// "8 aug [2026]"
	if m := dayMonthRe.FindStringSubmatch(s); m != nil {
		if mo, ok := monthNames[m[2]]; ok {
			d, _ := strconv.Atoi(m[1])
			y := 0
			if m[3] != "" {
				y = normalizeYear(m[3])
			} else {
				y = pickFutureYear(now, mo, d)
			}
			if isValidYMD(y, mo, d) {
				return fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
			}
		}
		return ""
	}

	// "aug 8 [2026]"
	if m := monthDayRe.FindStringSubmatch(s); m != nil {
		if mo, ok := monthNames[m[1]]; ok {
			d, _ := strconv.Atoi(m[2])
			y := 0
			if m[3] != "" {
				y = normalizeYear(m[3])
			} else {
				y = pickFutureYear(now, mo, d)
			}
			if isValidYMD(y, mo, d) {
				return fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
			}
		}
		return ""
	}

	return ""
}

// isValidYMD rejects dates that do not round-trip through the calendar,
// e.g. day 31 in a 30-day month.
func isValidYMD(y, m, d int) bool {
	if y < 1900 || m < 1 || m > 12 || d < 1 || d > 31 {
		return false
	}
	dt := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return dt.Year() == y && int(dt.Month()) == m && dt.Day() == d
}

func normalizeYear(s string) int {
	if len(s) == 2 {
		s = "20" + s
	}
	y, _ := strconv.Atoi(s)
	return y
}

// pickFutureYear returns the current year unless month/day already passed,
// in which case it assumes next year.
func pickFutureYear(now time.Time, month, day int) int {
	candidate := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		return now.Year() + 1
	}
	return now.Year()
}

// dateOnOrAfter reports whether dateStr (YYYY-MM-DD) is today or later.
func dateOnOrAfter(dateStr string, now time.Time) bool {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(today)
}
