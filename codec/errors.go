package codec

import (
	"errors"
	"strconv"
)

// Sentinel errors classify helper failures; match them with errors.Is.
var (
	ErrSyntax        = errors.New("codec: syntax error")
	ErrNotInteger    = errors.New("codec: not an integer")
	ErrOutOfRange    = errors.New("codec: out of range")
	ErrNotFinite     = errors.New("codec: not a finite number")
	ErrRollover      = errors.New("codec: date fields roll over")
	ErrNoRoot        = errors.New("codec: no root element")
	ErrMultipleRoots = errors.New("codec: multiple root elements")
)

// RangeError reports an integer outside an IntRange. It matches ErrOutOfRange.
type RangeError struct {
	Input string
	Range IntRange
	Below bool // true when the input is smaller than Range.Min
}

func (e *RangeError) Error() string {
	if e.Below {
		return "codec: " + strconv.Quote(e.Input) + " is below " + strconv.FormatInt(e.Range.Min, 10)
	}
	return "codec: " + strconv.Quote(e.Input) + " is above " + strconv.FormatInt(e.Range.Max, 10)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
