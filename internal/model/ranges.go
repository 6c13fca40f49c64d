package model

import (
	"fmt"
	"math"
	"strings"
)

// SeedRange is an inclusive range of seed numbers.
type SeedRange struct {
	Start uint64
	End   uint64
}

// Valid reports whether the range is non-empty.
func (r SeedRange) Valid() bool {
	return r.Start <= r.End
}

// Len returns the number of values in the range, saturating at math.MaxUint64.
func (r SeedRange) Len() uint64 {
	if !r.Valid() {
		return 0
	}

	if r.Start == 0 && r.End == math.MaxUint64 {
		return math.MaxUint64
	}

	return r.End - r.Start + 1
}

// Contains reports whether value lies inside the range.
func (r SeedRange) Contains(value uint64) bool {
	return r.Start <= value && value <= r.End
}

// Intersect returns the overlap of two ranges and whether there is any.
func (r SeedRange) Intersect(other SeedRange) (SeedRange, bool) {
	overlap := SeedRange{Start: max(r.Start, other.Start), End: min(r.End, other.End)}
	if !overlap.Valid() {
		return SeedRange{}, false
	}

	return overlap, true
}

func (r SeedRange) String() string {
	return fmt.Sprintf("%d..=%d", r.Start, r.End)
}

// RangeSet is the collection of seed ranges to evaluate. Ranges may overlap
// and come in any order.
type RangeSet []SeedRange

// Validate checks that the set can be searched for a minimum.
func (rs RangeSet) Validate() error {
	if len(rs) == 0 {
		return ErrEmptyInput
	}

	for i, r := range rs {
		if !r.Valid() {
			return fmt.Errorf("%w: range #%d starts at %d after its end %d", ErrInvalidRange, i, r.Start, r.End)
		}
	}

	return nil
}

// Size returns the total number of values across all ranges, counting
// overlaps twice and saturating at math.MaxUint64.
func (rs RangeSet) Size() uint64 {
	var total uint64

	for _, r := range rs {
		n := r.Len()
		if total > math.MaxUint64-n {
			return math.MaxUint64
		}

		total += n
	}

	return total
}

// SeedMode selects how the numbers on the seeds line become ranges.
type SeedMode int

const (
	// SeedModeSingle turns every number into a one-value range.
	SeedModeSingle SeedMode = iota
	// SeedModePairs reads the numbers as (start, length) pairs.
	SeedModePairs
)

func (m SeedMode) String() string {
	switch m {
	case SeedModeSingle:
		return "single"
	case SeedModePairs:
		return "pairs"
	default:
		return fmt.Sprintf("SeedMode(%d)", int(m))
	}
}

// ParseSeedMode parses "single" or "pairs" (case-insensitive).
func ParseSeedMode(value string) (SeedMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "single", "":
		return SeedModeSingle, nil
	case "pairs", "ranges":
		return SeedModePairs, nil
	}

	return SeedModeSingle, fmt.Errorf("unknown seed mode %q (want single or pairs)", value)
}

// NewRangeSet converts the numbers listed on the seeds line into ranges.
func NewRangeSet(numbers []uint64, mode SeedMode) (RangeSet, error) {
	switch mode {
	case SeedModeSingle:
		ranges := make(RangeSet, 0, len(numbers))
		for _, n := range numbers {
			ranges = append(ranges, SeedRange{Start: n, End: n})
		}

		return ranges, nil
	case SeedModePairs:
		return pairRanges(numbers)
	default:
		return nil, fmt.Errorf("unsupported seed mode %v", mode)
	}
}

func pairRanges(numbers []uint64) (RangeSet, error) {
	if len(numbers)%2 != 0 {
		return nil, fmt.Errorf("%w: %d numbers cannot form (start, length) pairs", ErrMalformedSeeds, len(numbers))
	}

	ranges := make(RangeSet, 0, len(numbers)/2)

	for i := 0; i < len(numbers); i += 2 {
		start, length := numbers[i], numbers[i+1]
		if length == 0 {
			return nil, fmt.Errorf("%w: pair #%d starting at %d has zero length", ErrInvalidRange, i/2, start)
		}

		if start > math.MaxUint64-(length-1) {
			return nil, fmt.Errorf("%w: pair #%d starting at %d with length %d overflows", ErrInvalidRange, i/2, start, length)
		}

		ranges = append(ranges, SeedRange{Start: start, End: start + length - 1})
	}

	return ranges, nil
}
