package dictionary

import "errors"

var (
	// ErrTableTooLarge is returned when a record table of the requested
	// dimensions cannot be allocated.
	ErrTableTooLarge = errors.New("record table is too large")
	// ErrRecordTooLong is returned when a line does not fit into a slot.
	ErrRecordTooLong = errors.New("record does not fit in the entry size")
	// ErrMalformedRecord marks a record without a delimiter between headword
	// and definition.
	ErrMalformedRecord = errors.New("record has no delimiter")
)
