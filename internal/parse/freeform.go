// Package parse turns heterogeneous textual date representations into
// canonical instant.Instant values. It offers free-form recognition
// (no caller-supplied template), strict strftime-style parsing, and
// element-wise helpers for whole columns of inputs.
package parse

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"datenorm/internal/instant"
)

// fields accumulates date/time components recognized by the scanner.
// Unset calendar fields are later filled from the reference instant.
type fields struct {
	year, month, day            int
	hour, minute, second, micro int

	hasYear, hasMonth, hasDay bool
	hasTime                   bool
}

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

// FreeForm scans text for recognizable date/time components (numeric
// groups, month names, ordinal day suffixes, clock time, AM/PM
// markers) and resolves them into an Instant.
//
// Ambiguous three-part numeric dates are interpreted per the DayFirst
// option; a component larger than 12 forces the only valid reading.
//
// Any calendar field absent from the input (e.g. the day in
// "June 1995") is filled from the matching field of the reference
// instant, which defaults to the system clock at call time. That
// default makes partial inputs time-dependent; supply Reference (or
// complete strings) when determinism matters. Clock fields absent from
// the input default to midnight.
//
// Inputs the scanner does not recognize (RFC 822/1123 stamps, ISO 8601
// with T or zone designators, unix epochs, ...) are handed to
// github.com/araddon/dateparse with the same day-first preference.
// FreeForm fails with *ParseError when neither path finds a date.
func FreeForm(text string, opts ...Option) (instant.Instant, error) {
	o := buildOptions(opts)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return instant.Instant{}, &ParseError{Text: text, Index: -1}
	}

	if f, ok := scan(trimmed, o.dayFirst); ok {
		if in, err := f.materialize(o); err == nil {
			return in, nil
		}
		// Scanner recognized tokens but the resulting date was not a
		// calendar date (e.g. "31-02-2020"); let the library have a go
		// before giving up.
	}

	t, err := dateparse.ParseAny(trimmed,
		dateparse.PreferMonthFirst(!o.dayFirst),
		dateparse.RetryAmbiguousDateWithSwap(false),
	)
	if err != nil {
		return instant.Instant{}, &ParseError{Text: text, Index: -1, Err: err}
	}
	return instant.FromTime(t), nil
}

// scan tokenizes text and recognizes components. It is strict: any
// token it cannot place fails the scan so the library fallback sees the
// original text instead of a half-read one.
func scan(text string, dayFirst bool) (fields, bool) {
	var f fields
	var smalls []int

	toks := strings.Fields(strings.ReplaceAll(strings.ToLower(text), ",", " "))
	for _, tok := range toks {
		switch {
		case monthNames[tok] != 0:
			if f.hasMonth {
				return f, false
			}
			f.month, f.hasMonth = monthNames[tok], true

		case tok == "am" || tok == "pm":
			if !f.hasTime || !applyMeridiem(&f, tok) {
				return f, false
			}

		case strings.ContainsRune(tok, ':'):
			if f.hasTime || !parseClock(tok, &f) {
				return f, false
			}

		case isOrdinal(tok):
			if f.hasDay {
				return f, false
			}
			f.day, _ = strconv.Atoi(tok[:len(tok)-2])
			f.hasDay = true

		case allDigits(tok):
			n, _ := strconv.Atoi(tok)
			switch {
			case len(tok) == 4:
				if f.hasYear {
					return f, false
				}
				f.year, f.hasYear = n, true
			case len(tok) <= 2:
				smalls = append(smalls, n)
			default:
				return f, false
			}

		case isGroup(tok):
			if !resolveGroup(tok, dayFirst, &f) {
				return f, false
			}

		default:
			return f, false
		}
	}

	if !resolveSmalls(smalls, dayFirst, &f) {
		return f, false
	}
	if !f.hasYear && !f.hasMonth && !f.hasDay && !f.hasTime {
		return f, false
	}
	return f, true
}

// materialize fills unset calendar fields from the reference instant
// and validates the result. The reference (and thus the clock, when no
// Reference option was given) is only consulted for incomplete inputs.
func (f fields) materialize(o options) (instant.Instant, error) {
	y, m, d := f.year, f.month, f.day
	if !f.hasYear || !f.hasMonth || !f.hasDay {
		ref := o.ref()
		if !f.hasYear {
			y = ref.Year
		}
		if !f.hasMonth {
			m = ref.Month
		}
		if !f.hasDay {
			d = ref.Day
			// Reference day may not exist in the target month
			// (e.g. the 31st while parsing "June 1995").
			if max := daysIn(y, m); d > max {
				d = max
			}
		}
	}
	return instant.New(y, m, d, f.hour, f.minute, f.second, f.micro)
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// resolveGroup handles tokens of digits joined by '-', '/' or '.':
// either a full date ("2014-06-03", "6/4/2001", "06-04-14") or a
// two-part month-year ("06-1995", "1995-06") / month-day pair.
func resolveGroup(tok string, dayFirst bool, f *fields) bool {
	if f.hasYear || f.hasMonth || f.hasDay {
		return false
	}
	parts := strings.FieldsFunc(tok, func(r rune) bool {
		return r == '-' || r == '/' || r == '.'
	})
	nums := make([]int, len(parts))
	for i, p := range parts {
		if !allDigits(p) {
			return false
		}
		nums[i], _ = strconv.Atoi(p)
	}

	switch len(parts) {
	case 3:
		if len(parts[0]) == 4 {
			// Year leads: unambiguous regardless of the day-first flag.
			if nums[1] > 12 {
				return false
			}
			f.year, f.month, f.day = nums[0], nums[1], nums[2]
		} else {
			y, ok := expandYear(parts[2], nums[2])
			if !ok {
				return false
			}
			m, d, ok := pair(nums[0], nums[1], dayFirst)
			if !ok {
				return false
			}
			f.year, f.month, f.day = y, m, d
		}
		f.hasYear, f.hasMonth, f.hasDay = true, true, true
		return true

	case 2:
		switch {
		case len(parts[0]) == 4 && nums[1] <= 12:
			f.year, f.month = nums[0], nums[1]
			f.hasYear, f.hasMonth = true, true
		case len(parts[1]) == 4 && nums[0] <= 12:
			f.month, f.year = nums[0], nums[1]
			f.hasYear, f.hasMonth = true, true
		case len(parts[0]) <= 2 && len(parts[1]) <= 2:
			m, d, ok := pair(nums[0], nums[1], dayFirst)
			if !ok {
				return false
			}
			f.month, f.day = m, d
			f.hasMonth, f.hasDay = true, true
		default:
			return false
		}
		return true
	}
	return false
}

// pair resolves two small numbers into (month, day). A value above 12
// can only be the day; otherwise the day-first flag breaks the tie.
func pair(a, b int, dayFirst bool) (month, day int, ok bool) {
	switch {
	case a > 12 && b > 12:
		return 0, 0, false
	case a > 12:
		return b, a, true
	case b > 12:
		return a, b, true
	case dayFirst:
		return b, a, true
	default:
		return a, b, true
	}
}

// resolveSmalls assigns leftover standalone 1-2 digit numbers to the
// open month/day slots ("June 4 2009", "21 06 1995").
func resolveSmalls(smalls []int, dayFirst bool, f *fields) bool {
	switch len(smalls) {
	case 0:
		return true
	case 1:
		n := smalls[0]
		switch {
		case f.hasMonth && !f.hasDay:
			f.day, f.hasDay = n, true
		case f.hasDay && !f.hasMonth:
			if n > 12 {
				return false
			}
			f.month, f.hasMonth = n, true
		case !f.hasMonth && !f.hasDay:
			if n <= 12 {
				f.month, f.hasMonth = n, true
			} else {
				f.day, f.hasDay = n, true
			}
		default:
			return false
		}
		return true
	case 2:
		if f.hasMonth || f.hasDay {
			return false
		}
		m, d, ok := pair(smalls[0], smalls[1], dayFirst)
		if !ok {
			return false
		}
		f.month, f.day = m, d
		f.hasMonth, f.hasDay = true, true
		return true
	}
	return false
}

// parseClock reads "15:04", "15:04:05", "15:04:05.123456" with an
// optional attached meridiem suffix ("10:45pm").
func parseClock(tok string, f *fields) bool {
	meridiem := ""
	if strings.HasSuffix(tok, "am") || strings.HasSuffix(tok, "pm") {
		meridiem = tok[len(tok)-2:]
		tok = tok[:len(tok)-2]
	}

	parts := strings.Split(tok, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	if !allDigits(parts[0]) || !allDigits(parts[1]) {
		return false
	}
	f.hour, _ = strconv.Atoi(parts[0])
	f.minute, _ = strconv.Atoi(parts[1])
	if len(parts) == 3 {
		sec := parts[2]
		if dot := strings.IndexByte(sec, '.'); dot >= 0 {
			if !parseFraction(sec[dot+1:], f) {
				return false
			}
			sec = sec[:dot]
		}
		if !allDigits(sec) {
			return false
		}
		f.second, _ = strconv.Atoi(sec)
	}
	if f.hour > 23 || f.minute > 59 || f.second > 59 {
		return false
	}
	f.hasTime = true
	if meridiem != "" && !applyMeridiem(f, meridiem) {
		return false
	}
	return true
}

// parseFraction converts a fractional-seconds suffix to microseconds,
// truncating beyond six digits.
func parseFraction(frac string, f *fields) bool {
	if frac == "" || !allDigits(frac) {
		return false
	}
	if len(frac) > 6 {
		frac = frac[:6]
	}
	n, _ := strconv.Atoi(frac)
	for i := len(frac); i < 6; i++ {
		n *= 10
	}
	f.micro = n
	return true
}

func applyMeridiem(f *fields, m string) bool {
	if f.hour < 1 || f.hour > 12 {
		return false
	}
	if m == "pm" && f.hour < 12 {
		f.hour += 12
	}
	if m == "am" && f.hour == 12 {
		f.hour = 0
	}
	return true
}

func isOrdinal(tok string) bool {
	if len(tok) < 3 || len(tok) > 4 {
		return false
	}
	suffix := tok[len(tok)-2:]
	if suffix != "st" && suffix != "nd" && suffix != "rd" && suffix != "th" {
		return false
	}
	return allDigits(tok[:len(tok)-2])
}

func isGroup(tok string) bool {
	return strings.ContainsAny(tok, "-/.")
}

func allDigits(s string) bool {
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

// expandYear widens a trailing year component: two digits pivot at 70
// ("14" -> 2014, "95" -> 1995), four digits pass through.
func expandYear(part string, n int) (int, bool) {
	switch len(part) {
	case 4:
		return n, true
	case 2:
		if n < 70 {
			return 2000 + n, true
		}
		return 1900 + n, true
	}
	return 0, false
}
