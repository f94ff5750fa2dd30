// Package codec holds the text codecs shared by the date and datetime
// descriptors: strict ISO-8601 parsing with explicit timezone precedence and
// canonical formatting.
package codec

import (
	"math"
	"regexp"
	"strconv"
	"time"

	soaplib "github.com/luckyluke/soaplib"
	"github.com/luckyluke/soaplib/i18n"
)

const (
	datePattern   = `(\d{4})-(\d{2})-(\d{2})`
	timePattern   = `(\d{2}):(\d{2}):(\d{2})(\.\d+)?`
	offsetPattern = `([+-])(\d{2}):(\d{2})`
)

// Datetime patterns are tried in precedence order: UTC first, then explicit
// offset, then naive. The UTC and offset forms would otherwise be shadowed
// by the naive pattern's prefix.
var (
	dateRe   = regexp.MustCompile(`^` + datePattern + `$`)
	utcRe    = regexp.MustCompile(`^` + datePattern + `[T ]` + timePattern + `Z`)
	offsetRe = regexp.MustCompile(`^` + datePattern + `[T ]` + timePattern + offsetPattern)
	localRe  = regexp.MustCompile(`^` + datePattern + `[T ]` + timePattern)
)

// ParseDate parses a calendar date in the exact YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, parseError("date", s)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders the calendar date in ISO-8601 form.
func FormatDate(t time.Time) string { return t.Format("2006-01-02") }

// ParseDateTime parses ISO-8601 datetime text. Precedence: trailing Z maps
// to UTC, a trailing ±HH:MM maps to that fixed offset, a bare datetime stays
// in the local zone. Fractional seconds round to microsecond resolution.
func ParseDateTime(s string) (time.Time, error) {
	if m := utcRe.FindStringSubmatch(s); m != nil {
		return buildTime(m, time.UTC), nil
	}
	if m := offsetRe.FindStringSubmatch(s); m != nil {
		hr, _ := strconv.Atoi(m[9])
		mn, _ := strconv.Atoi(m[10])
		minutes := hr*60 + mn
		if m[8] == "-" {
			minutes = -minutes
		}
		return buildTime(m, time.FixedZone("", minutes*60)), nil
	}
	if m := localRe.FindStringSubmatch(s); m != nil {
		return buildTime(m, time.Local), nil
	}
	return time.Time{}, parseError("datetime", s)
}

// FormatDateTime renders ISO-8601 with the T separator and the timezone
// offset (Z for UTC). Fractional seconds appear only when non-zero.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.999999Z07:00")
}

func buildTime(m []string, loc *time.Location) time.Time {
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	hr, _ := strconv.Atoi(m[4])
	mn, _ := strconv.Atoi(m[5])
	sec, _ := strconv.Atoi(m[6])
	micro := 0
	if m[7] != "" {
		frac, _ := strconv.ParseFloat(m[7], 64)
		micro = int(math.Round(frac * 1e6))
	}
	return time.Date(y, time.Month(mo), d, hr, mn, sec, micro*1000, loc)
}

func parseError(kind, s string) error {
	return soaplib.Issues{{
		Path:    "/",
		Code:    soaplib.CodeParseError,
		Message: kind + " " + i18n.T(soaplib.CodeParseError, map[string]string{"value": s}),
		Params:  map[string]any{"value": s},
	}}
}
