package model

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRangeSet_Single(t *testing.T) {
	ranges, err := NewRangeSet([]uint64{79, 14, 55, 13}, SeedModeSingle)
	require.NoError(t, err)

	want := RangeSet{{79, 79}, {14, 14}, {55, 55}, {13, 13}}
	if diff := cmp.Diff(want, ranges); diff != "" {
		t.Errorf("NewRangeSet() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRangeSet_Pairs(t *testing.T) {
	ranges, err := NewRangeSet([]uint64{79, 14, 55, 13}, SeedModePairs)
	require.NoError(t, err)

	want := RangeSet{{79, 92}, {55, 67}}
	if diff := cmp.Diff(want, ranges); diff != "" {
		t.Errorf("NewRangeSet() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, uint64(27), ranges.Size())
}

func TestNewRangeSet_PairsErrors(t *testing.T) {
	tests := []struct {
		name    string
		numbers []uint64
		wantErr error
	}{
		{"odd count", []uint64{79, 14, 55}, ErrMalformedSeeds},
		{"zero length", []uint64{79, 0}, ErrInvalidRange},
		{"overflow", []uint64{math.MaxUint64, 2}, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRangeSet(tt.numbers, SeedModePairs)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRangeSet_Validate(t *testing.T) {
	require.ErrorIs(t, RangeSet{}.Validate(), ErrEmptyInput)
	require.ErrorIs(t, RangeSet(nil).Validate(), ErrEmptyInput)
	require.ErrorIs(t, RangeSet{{1, 2}, {5, 4}}.Validate(), ErrInvalidRange)
	require.NoError(t, RangeSet{{1, 2}, {4, 4}}.Validate())
}

func TestRangeSet_SizeSaturates(t *testing.T) {
	ranges := RangeSet{{0, math.MaxUint64}, {1, 1}}
	assert.Equal(t, uint64(math.MaxUint64), ranges.Size())
}

func TestSeedRange_Intersect(t *testing.T) {
	overlap, ok := SeedRange{1, 10}.Intersect(SeedRange{5, 20})
	require.True(t, ok)
	assert.Equal(t, SeedRange{5, 10}, overlap)

	_, ok = SeedRange{1, 4}.Intersect(SeedRange{5, 20})
	assert.False(t, ok)
}

func TestSeedRange_String(t *testing.T) {
	assert.Equal(t, "79..=92", SeedRange{79, 92}.String())
}

func TestParseSeedMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SeedMode
		wantErr bool
	}{
		{"single", SeedModeSingle, false},
		{"", SeedModeSingle, false},
		{"PAIRS", SeedModePairs, false},
		{"ranges", SeedModePairs, false},
		{"triples", SeedModeSingle, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeedMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "pairs", SeedModePairs.String())
	assert.Equal(t, "SeedMode(7)", SeedMode(7).String())
}

func TestParseStrategy(t *testing.T) {
	got, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyBruteForce, got)

	got, err = ParseStrategy("intervals")
	require.NoError(t, err)
	assert.Equal(t, StrategyIntervals, got)

	_, err = ParseStrategy("magic")
	require.Error(t, err)
}
