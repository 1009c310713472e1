package parse

import "fmt"

// ParseError reports input text in which no recognizable date or time
// pattern was found. For collection input, Index is the position of the
// offending element; for scalar input it is -1.
type ParseError struct {
	Text  string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("parse: element %d: no date/time pattern in %q", e.Index, e.Text)
	}
	return fmt.Sprintf("parse: no date/time pattern in %q", e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatMismatchError reports text that does not conform to an
// explicitly supplied format string.
type FormatMismatchError struct {
	Text   string
	Format string
	Err    error
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("parse: %q does not match format %q", e.Text, e.Format)
}

func (e *FormatMismatchError) Unwrap() error { return e.Err }

// LengthMismatchError reports field-combination input sequences of
// inconsistent lengths.
type LengthMismatchError struct {
	Years, Months, Days int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("parse: field lengths differ: years=%d months=%d days=%d",
		e.Years, e.Months, e.Days)
}
