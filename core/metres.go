package core

import "fmt"

// Metres is a bounds-checked coordinate value inside a single 500km
// square. It supports truncation to a coarser precision and rendering
// as the zero-padded digits of a grid reference.
type Metres struct {
	raw uint32
}

// NewMetres validates raw into a Metres value.
// Returns ErrOutOfBounds if raw is not below 500km.
func NewMetres(raw uint32) (Metres, error) {
	if raw >= metres500Km {
		return Metres{}, ErrOutOfBounds
	}

	return Metres{raw: raw}, nil
}

// Uint32 returns the wrapped value in metres.
func (m Metres) Uint32() uint32 {
	return m.raw
}

// Truncate returns a copy with everything below the precision's metre
// span zeroed out. Truncation only ever reduces the value, so the result
// is always in bounds.
func (m Metres) Truncate(p Precision) Metres {
	return Metres{raw: m.raw - m.raw%p.Metres()}
}

// Padded returns the value's offset within the current 100km square as
// grid reference digits, zero-padded to the precision's width. The
// coarsest precision renders no digits and returns "".
//
// A reference's digit pairs always encode the offset within the current
// 100km square, regardless of overall precision.
func (m Metres) Padded(p Precision) string {
	if p.Digits() == 0 {
		return ""
	}

	metres := m.raw % metres100Km

	return fmt.Sprintf("%0*d", p.Digits()/2, metres/p.Metres())
}
