// Package u7 provides the 7-bit data byte used throughout MIDI.
package u7

import (
	"fmt"

	"github.com/pkg/errors"
)

// Max is the largest value a U7 can hold.
const Max = 0x7F

// ErrOutOfRange is returned when a value does not fit in 7 bits.
var ErrOutOfRange = errors.New("value out of 7-bit range")

// U7 is an unsigned byte whose value is always in 0..127.
// It can only be built with New or FromUnchecked; the zero value is 0.
type U7 struct {
	v uint8
}

// New validates v and returns it as a U7.
func New(v int) (U7, error) {
	if v < 0 || Max < v {
		return U7{}, errors.Wrapf(ErrOutOfRange, "got %d, want 0..%d", v, Max)
	}
	return U7{v: uint8(v)}, nil
}

// FromUnchecked converts b without reporting errors and is the only
// unvalidated way to build a U7. Callers must already hold b <= 127;
// bits above the low seven are dropped.
func FromUnchecked(b uint8) U7 {
	return U7{v: b & Max}
}

func (v U7) Uint8() uint8 {
	return v.v
}

func (v U7) Int() int {
	return int(v.v)
}

func (v U7) String() string {
	return fmt.Sprintf("%d", v.v)
}
