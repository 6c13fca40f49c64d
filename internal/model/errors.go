package model

import "errors"

var (
	// ErrEmptyInput is returned when there are no seed ranges to evaluate.
	ErrEmptyInput = errors.New("empty input: no seed ranges")
	// ErrInvalidRange is returned when a seed range starts after it ends.
	ErrInvalidRange = errors.New("invalid seed range")
	// ErrMissingStage is returned when a chain cannot be assembled from the named stages.
	ErrMissingStage = errors.New("missing stage")
	// ErrInvalidRule is returned for a map rule with zero length or an overflowing interval.
	ErrInvalidRule = errors.New("invalid map rule")
	// ErrMalformedSeeds is returned when seed numbers cannot be paired up.
	ErrMalformedSeeds = errors.New("malformed seed list")
)
