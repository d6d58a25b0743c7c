package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Excel serial range accepted as a date, roughly years 1968..2064. Anything
// outside is treated as an ordinary number, not a date.
const (
	minExcelSerial = 25000
	maxExcelSerial = 60000
)

var (
	serialRe    = regexp.MustCompile(`^\d{5,}$`)
	isoRe       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	dayMonthRe  = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})`)
	monthYearRe = regexp.MustCompile(`^(\d{1,2})[/\-](\d{4})$`)
)

// excelSerialToDate converts an Excel 1900-epoch day serial to a calendar
// date. Serial 1 is 1900-01-01; the construction below reproduces the
// format's historical 1900 leap-year quirk through date normalization.
func excelSerialToDate(serial int) time.Time {
	return time.Date(1900, time.January, serial-1, 0, 0, 0, 0, time.UTC)
}

// Date parses a date cell. It understands Excel day serials (within the
// sane range above), unix-second timestamps, ISO YYYY-MM-DD with an optional
// time part, pt-BR DD/MM/YYYY and DD-MM-YYYY with 2- or 4-digit years, and
// month/year-only strings. Returns nil when nothing matches.
func Date(value string) *time.Time {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil
	}

	if serialRe.MatchString(s) {
		n, err := strconv.ParseFloat(s, 64)
		if err == nil {
			if n > minExcelSerial && n < maxExcelSerial {
				t := excelSerialToDate(int(n))
				return &t
			}
			// Unix timestamps in seconds (2001..2033).
			if n > 1_000_000_000 && n < 2_000_000_000 {
				t := time.Unix(int64(n), 0).UTC()
				return &t
			}
		}
	}

	if isoRe.MatchString(s) {
		datePart := strings.SplitN(s, "T", 2)[0]
		parts := strings.Split(datePart, "-")
		y, _ := strconv.Atoi(parts[0])
		m, _ := strconv.Atoi(parts[1])
		d, _ := strconv.Atoi(parts[2])
		t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	if m := dayMonthRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		return &t
	}

	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return &t
	}

	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"02/01/2006 15:04:05",
		"Jan 2, 2006",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}

	return nil
}

// FormatDate renders a date as DD-MM-YYYY, the layout used across canonical
// output. A nil date renders as the empty string.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("02-01-2006")
}
