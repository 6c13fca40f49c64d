// Package model defines the data structures of an almanac: map rules, stages,
// the stage chain and the seed ranges fed into it.
package model

import (
	"fmt"
	"math"
)

// MapRule redirects the source interval [SourceStart, SourceStart+Length) onto
// [DestStart, DestStart+Length) by a constant offset.
type MapRule struct {
	SourceStart uint64
	DestStart   uint64
	Length      uint64
}

// NewMapRule builds a rule from an almanac row, which lists the destination first.
func NewMapRule(destStart, sourceStart, length uint64) (MapRule, error) {
	if length == 0 {
		return MapRule{}, fmt.Errorf("%w: zero length at source %d", ErrInvalidRule, sourceStart)
	}

	if sourceStart > math.MaxUint64-(length-1) || destStart > math.MaxUint64-(length-1) {
		return MapRule{}, fmt.Errorf("%w: interval of length %d overflows (source %d, destination %d)",
			ErrInvalidRule, length, sourceStart, destStart)
	}

	return MapRule{
		SourceStart: sourceStart,
		DestStart:   destStart,
		Length:      length,
	}, nil
}

// Covers reports whether value falls inside the rule's source interval.
func (r MapRule) Covers(value uint64) bool {
	return value >= r.SourceStart && value-r.SourceStart < r.Length
}

// Apply maps a covered value onto the destination interval.
// The result is meaningless when Covers(value) is false.
func (r MapRule) Apply(value uint64) uint64 {
	return r.DestStart + (value - r.SourceStart)
}

// SourceEnd returns the last source value covered by the rule.
func (r MapRule) SourceEnd() uint64 {
	return r.SourceStart + (r.Length - 1)
}

// DestEnd returns the last destination value produced by the rule.
func (r MapRule) DestEnd() uint64 {
	return r.DestStart + (r.Length - 1)
}
