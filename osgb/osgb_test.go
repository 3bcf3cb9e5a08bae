package osgb_test

import (
	"testing"

	"github.com/cartolane/gridref/core"
	"github.com/cartolane/gridref/osgb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grids pins raw coordinates, input strings (including messy ones) and
// canonical output strings to each other across every precision.
var grids = []struct {
	eastings  uint32
	northings uint32
	precision core.Precision
	input     string
	output    string
}{
	{300_000, 200_000, core.Precision100Km, "SO", "SO"},
	{380_000, 240_000, core.Precision10Km, "SO84", "SO84"},
	{389_000, 243_000, core.Precision1Km, "SO8943", "SO8943"},
	{389_200, 243_700, core.Precision100M, "SO892437", "SO892437"},
	{389_290, 243_760, core.Precision10M, "SO89294376", "SO89294376"},
	{389_291, 243_762, core.Precision1M, "SO8929143762", "SO8929143762"},
	{224_000, 668_000, core.Precision1Km, "ns 24 68", "NS2468"},
	{365_000, 620_000, core.Precision1Km, "NT6520", "NT6520"},
	{512_300, 245_600, core.Precision100M, " TL123456 ", "TL123456"},
	{503_400, 443_400, core.Precision100M, "Ta 0344 34", "TA034434"},
}

// TestParse verifies parsing across precisions, including whitespace and
// lowercase normalization.
func TestParse(t *testing.T) {
	for _, tc := range grids {
		t.Run(tc.input, func(t *testing.T) {
			ref, err := osgb.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, float64(tc.eastings), ref.SW().Easting)
			assert.Equal(t, float64(tc.northings), ref.SW().Northing)
			assert.Equal(t, tc.precision, ref.Precision())
		})
	}
}

// TestParse_Rejects verifies the parse failure modes and their messages.
func TestParse_Rejects(t *testing.T) {
	_, err := osgb.Parse("TL123")
	assert.ErrorIs(t, err, core.ErrParse)
	assert.ErrorContains(t, err, "3 is not a valid number of digits. Supported values: 0, 2, 4, 6, 8, 10.")

	_, err = osgb.Parse("123")
	assert.ErrorIs(t, err, core.ErrParse)
	assert.ErrorContains(t, err, "1 is not a valid grid square")

	// The digits after T leave "4" to be read as a 100km square.
	_, err = osgb.Parse("T45")
	assert.ErrorIs(t, err, core.ErrParse)
	assert.ErrorContains(t, err, "4 is not a valid grid square")

	_, err = osgb.Parse("   ")
	assert.ErrorIs(t, err, core.ErrParse)
	assert.ErrorContains(t, err, "empty")

	// A is on the letter grid but the British grid never uses it.
	_, err = osgb.Parse("AB1234")
	assert.ErrorIs(t, err, core.ErrParse)
	assert.ErrorContains(t, err, "A is not a supported 500km square")
}

// TestString verifies formatting from raw coordinates at every
// precision.
func TestString(t *testing.T) {
	for _, tc := range grids {
		t.Run(tc.output, func(t *testing.T) {
			ref, err := osgb.New(tc.eastings, tc.northings, tc.precision)
			require.NoError(t, err)
			assert.Equal(t, tc.output, ref.String())
		})
	}
}

// TestNew_Whitelist verifies coordinates resolving outside the five
// supported 500km squares are rejected.
func TestNew_Whitelist(t *testing.T) {
	// (1200000, 0) lands on square U, east of T.
	_, err := osgb.New(1_200_000, 0, core.Precision100M)
	assert.ErrorIs(t, err, core.ErrParse)
	assert.ErrorContains(t, err, "U is not a supported 500km square")

	// (0, 1500000) lands on square C, north of H.
	_, err = osgb.New(0, 1_500_000, core.Precision100M)
	assert.ErrorIs(t, err, core.ErrParse)
	assert.ErrorContains(t, err, "C is not a supported 500km square")

	// Far beyond the letter grid entirely.
	_, err = osgb.New(4_000_000_000, 0, core.Precision100M)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
}

// TestRoundTrip verifies format(parse(format(x))) == format(x) for the
// pinned references.
func TestRoundTrip(t *testing.T) {
	for _, tc := range grids {
		ref, err := osgb.New(tc.eastings, tc.northings, tc.precision)
		require.NoError(t, err)

		reparsed, err := osgb.Parse(ref.String())
		require.NoError(t, err)
		assert.Equal(t, ref.String(), reparsed.String())
		assert.Equal(t, ref, reparsed)
	}
}

// TestRecalculate verifies precision loss, idempotence at equal
// precision, and the no-op on a finer request.
func TestRecalculate(t *testing.T) {
	ref, err := osgb.Parse("SO892437")
	require.NoError(t, err)

	coarser := ref.Recalculate(core.Precision10Km)
	assert.Equal(t, "SO84", coarser.String())
	assert.Equal(t, core.Precision10Km, coarser.Precision())

	same := ref.Recalculate(core.Precision100M)
	assert.Equal(t, ref, same)

	// Finer than current: unchanged copy, original precision kept.
	finer := ref.Recalculate(core.Precision1M)
	assert.Equal(t, ref, finer)
	assert.Equal(t, "SO892437", finer.String())
}

// TestCorners verifies the derived geometry of the cell at the grid
// origin.
func TestCorners(t *testing.T) {
	ref, err := osgb.New(0, 0, core.Precision100M)
	require.NoError(t, err)

	assert.Equal(t, core.Coord{Easting: 0, Northing: 0}, ref.SW())
	assert.Equal(t, core.Coord{Easting: 0, Northing: 100}, ref.NW())
	assert.Equal(t, core.Coord{Easting: 100, Northing: 100}, ref.NE())
	assert.Equal(t, core.Coord{Easting: 100, Northing: 0}, ref.SE())
	assert.Equal(t, core.Coord{Easting: 50, Northing: 50}, ref.Centre())
	assert.Equal(t, []core.Coord{ref.SW(), ref.NW(), ref.NE(), ref.SE()}, ref.Perimeter())
}

// TestCorners_Spans verifies corner spans follow the precision.
func TestCorners_Spans(t *testing.T) {
	ref, err := osgb.Parse("SO84")
	require.NoError(t, err)

	assert.Equal(t, core.Coord{Easting: 380_000, Northing: 240_000}, ref.SW())
	assert.Equal(t, core.Coord{Easting: 390_000, Northing: 250_000}, ref.NE())
	assert.Equal(t, core.Coord{Easting: 385_000, Northing: 245_000}, ref.Centre())
}
