package parse

import (
	"fmt"

	"datenorm/internal/instant"
)

// Collection applies FreeForm to every element of tokens, preserving
// input order. It fails atomically: the first unparseable element
// aborts the whole call with a *ParseError carrying that element's
// position, and no partial sequence is returned. A best-effort variant
// was considered and rejected; a column with bad cells should be fixed
// at the source, not silently thinned.
func Collection(tokens []string, opts ...Option) (instant.Sequence, error) {
	seq := make(instant.Sequence, 0, len(tokens))
	for i, tok := range tokens {
		in, err := FreeForm(tok, opts...)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				return nil, &ParseError{Text: pe.Text, Index: i, Err: pe.Err}
			}
			return nil, err
		}
		seq = append(seq, in)
	}
	return seq, nil
}

// CombineFields zips three equal-length sequences of year, month and
// day numbers into date instants (clock fields zero), element-wise and
// order-preserving. Fails with *LengthMismatchError when the sequences
// differ in length, or with the underlying validation error when a
// triple is not a calendar date.
func CombineFields(years, months, days []int) (instant.Sequence, error) {
	if len(years) != len(months) || len(months) != len(days) {
		return nil, &LengthMismatchError{Years: len(years), Months: len(months), Days: len(days)}
	}
	seq := make(instant.Sequence, 0, len(years))
	for i := range years {
		in, err := instant.Date(years[i], months[i], days[i])
		if err != nil {
			return nil, fmt.Errorf("parse: element %d: %w", i, err)
		}
		seq = append(seq, in)
	}
	return seq, nil
}
