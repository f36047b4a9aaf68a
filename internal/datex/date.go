// Package datex provides Brazilian date/time masks, converters and
// validators used by the console forms. The backend speaks ISO-8601;
// users type DD/MM/YYYY and DD/MM/YYYY HH:mm.
//
// All functions are pure and total: malformed input yields a zero value
// plus ok=false (or false for validators), never a panic.
package datex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// nowFn is a test seam for time.Now. In tests, replace it with a stub.
var nowFn = time.Now

const (
	displayDateLayout     = "02/01/2006"
	displayDateTimeLayout = "02/01/2006 15:04"
)

var (
	brDateRe     = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	brDateTimeRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} \d{2}:\d{2}$`)
	isoDateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// saoPauloUTCOffset is the fixed America/Sao_Paulo -> UTC correction.
// Brazil stopped observing DST in 2019, so a constant offset is intentional.
const saoPauloUTCOffset = 3 * time.Hour

// digitsOnly strips every non-digit rune from s.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TypingDateMask formats raw keyboard input progressively as DD/MM/YYYY.
// Non-digits are stripped, input is truncated to 8 digits, and the '/'
// separators are inserted as soon as each segment is complete, so the
// mask is stable while the user is still typing.
func TypingDateMask(raw string) string {
	v := digitsOnly(raw)
	if len(v) > 8 {
		v = v[:8]
	}

	switch {
	case len(v) >= 5:
		return v[:2] + "/" + v[2:4] + "/" + v[4:]
	case len(v) >= 3:
		return v[:2] + "/" + v[2:]
	default:
		return v
	}
}

// TypingDateTimeMask is TypingDateMask extended to a 12-digit budget,
// producing DD/MM/YYYY HH:mm. Input that already looks ISO-formatted
// (YYYY-MM-DD...) is recognized and reformatted rather than masked
// digit by digit, so prefilled wire values render correctly.
func TypingDateTimeMask(raw string) string {
	if isoDateRe.MatchString(raw) {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t.Format(displayDateTimeLayout)
		}
		if t, err := time.Parse("2006-01-02T15:04:05.000Z", raw); err == nil {
			return t.Format(displayDateTimeLayout)
		}
		if t, err := time.Parse("2006-01-02", raw[:10]); err == nil {
			return t.Format(displayDateTimeLayout)
		}
	}

	v := digitsOnly(raw)
	if len(v) > 12 {
		v = v[:12]
	}

	switch {
	case len(v) >= 11:
		return v[:2] + "/" + v[2:4] + "/" + v[4:8] + " " + v[8:10] + ":" + v[10:]
	case len(v) >= 9:
		return v[:2] + "/" + v[2:4] + "/" + v[4:8] + " " + v[8:]
	case len(v) >= 5:
		return v[:2] + "/" + v[2:4] + "/" + v[4:]
	case len(v) >= 3:
		return v[:2] + "/" + v[2:]
	default:
		return v
	}
}

// FormatDate renders a wire timestamp as DD/MM/YYYY for table cells.
func FormatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// FormatDateTime renders a wire timestamp as DD/MM/YYYY HH:mm.
func FormatDateTime(t time.Time) string {
	return t.Format(displayDateTimeLayout)
}

// BrazilianDateToISO converts DD/MM/YYYY to YYYY-MM-DD.
// Returns ok=false on empty or malformed input.
func BrazilianDateToISO(value string) (string, bool) {
	if !brDateRe.MatchString(value) {
		return "", false
	}
	dd, mm, yyyy := value[:2], value[3:5], value[6:]
	return yyyy + "-" + mm + "-" + dd, true
}

// ISODateToBrazilian converts YYYY-MM-DD (with an optional time suffix,
// e.g. a full ISO timestamp) to DD/MM/YYYY. Returns ok=false on empty
// or malformed input.
func ISODateToBrazilian(value string) (string, bool) {
	if !isoDateRe.MatchString(value) {
		return "", false
	}
	datePart := value[:10]
	yyyy, mm, dd := datePart[:4], datePart[5:7], datePart[8:]
	return dd + "/" + mm + "/" + yyyy, true
}

// splitBrazilianDate parses the three numeric fields of DD/MM/YYYY.
// The caller must have checked the shape against brDateRe first.
func splitBrazilianDate(value string) (year, month, day int) {
	day, _ = strconv.Atoi(value[:2])
	month, _ = strconv.Atoi(value[3:5])
	year, _ = strconv.Atoi(value[6:])
	return year, month, day
}

// BrazilianDateTimeToUTC converts "DD/MM/YYYY HH:mm" (local shelter time,
// America/Sao_Paulo) to an ISO-8601 UTC instant with millisecond precision,
// e.g. "2024-06-15T13:00:00.000Z". Field ranges are validated; the fixed
// +3h offset is then applied. Returns ok=false on any invalid field.
func BrazilianDateTimeToUTC(value string) (string, bool) {
	if !brDateTimeRe.MatchString(value) {
		return "", false
	}

	day, _ := strconv.Atoi(value[:2])
	month, _ := strconv.Atoi(value[3:5])
	year, _ := strconv.Atoi(value[6:10])
	hour, _ := strconv.Atoi(value[11:13])
	minute, _ := strconv.Atoi(value[14:])

	if month < 1 || month > 12 {
		return "", false
	}
	if day < 1 || day > 31 {
		return "", false
	}
	if hour > 23 || minute > 59 {
		return "", false
	}

	local := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	utc := local.Add(saoPauloUTCOffset)

	return fmt.Sprintf("%s.000Z", utc.Format("2006-01-02T15:04:05")), true
}

// IsValidDate reports whether value is a DD/MM/YYYY string naming a real
// calendar day. The check round-trips through time.Date, which normalizes
// overflowing fields, so 31/04/2024 and 29/02/2023 are rejected.
func IsValidDate(value string) bool {
	if !brDateRe.MatchString(value) {
		return false
	}

	year, month, day := splitBrazilianDate(value)
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}

	dt := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return dt.Year() == year && int(dt.Month()) == month && dt.Day() == day
}

// IsValidBirthDate reports whether value is a valid calendar day that is
// not in the future. Comparison happens at UTC midnight, matching the
// backend's birthDate semantics.
func IsValidBirthDate(value string) bool {
	if !IsValidDate(value) {
		return false
	}

	year, month, day := splitBrazilianDate(value)
	input := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	now := nowFn().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return !input.After(today)
}
