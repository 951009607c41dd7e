package core

import (
	"context"
	"strconv"
	"strings"
	"time"
)

const defaultDateFormat = "MMMM yyyy"

// IsDateOnly reports whether t was stored using the midnight-UTC
// convention for calendar days, that is, all of its UTC clock fields
// are zero.
func IsDateOnly(t time.Time) bool {
	utc := t.UTC()
	h, m, s := utc.Clock()
	return h == 0 && m == 0 && s == 0 && utc.Nanosecond() == 0
}

// NormalizeDate re-anchors date-only values to the local timezone so that
// the calendar day they name survives formatting under any host zone. A
// date with a time-of-day component is a true instant and passes through
// unchanged. A date at exactly local midnight equal to UTC midnight is
// ambiguous by construction; treating it as date-only is the defined,
// deterministic resolution.
func NormalizeDate(t time.Time) time.Time {
	if !IsDateOnly(t) {
		return t
	}

	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.Local)
}

// FormatDate renders t using the pattern and locale of the active render
// context. It fails with [ErrNoRenderContext] if ctx carries none.
func FormatDate(ctx context.Context, t time.Time) (string, error) {
	rc, err := RenderContextFrom(ctx)
	if err != nil {
		return "", err
	}

	return rc.FormatDate(t), nil
}

// FormatDate renders t with this context's date pattern and locale,
// normalizing date-only values first.
func (rc *RenderContext) FormatDate(t time.Time) string {
	return formatPattern(NormalizeDate(t), rc.DateFormat, rc.Locale)
}

// formatPattern interprets a small subset of CLDR-style date patterns:
// d, dd, M, MM, MMM, MMMM, yy and yyyy. Unknown letter runs are copied
// verbatim, as are separators.
func formatPattern(t time.Time, pattern string, locale *Locale) string {
	var b strings.Builder

	for i := 0; i < len(pattern); {
		j := i
		for j < len(pattern) && pattern[j] == pattern[i] {
			j++
		}

		switch run := pattern[i:j]; run {
		case "d":
			b.WriteString(strconv.Itoa(t.Day()))
		case "dd":
			b.WriteString(pad2(t.Day()))
		case "M":
			b.WriteString(strconv.Itoa(int(t.Month())))
		case "MM":
			b.WriteString(pad2(int(t.Month())))
		case "MMM":
			b.WriteString(locale.MonthAbbrev(t.Month()))
		case "MMMM":
			b.WriteString(locale.MonthName(t.Month()))
		case "yy":
			b.WriteString(pad2(t.Year() % 100))
		case "yyyy":
			b.WriteString(strconv.Itoa(t.Year()))
		default:
			b.WriteString(run)
		}

		i = j
	}

	return b.String()
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}

	return strconv.Itoa(v)
}
