package model

import "fmt"

// StageNames lists the stages of a full chain in the order they are applied.
var StageNames = []string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

// Chain threads a seed through its stages in order. It holds no mutable state
// and is safe for concurrent use.
type Chain struct {
	Stages []Stage
}

// NewChain picks the stages named in StageNames out of stages, in that order.
// When a name occurs more than once the first occurrence is used.
func NewChain(stages []Stage) (Chain, error) {
	if len(stages) < len(StageNames) {
		return Chain{}, fmt.Errorf("%w: got %d stages, need %d", ErrMissingStage, len(stages), len(StageNames))
	}

	byName := make(map[string]Stage, len(stages))

	for _, stage := range stages {
		if _, seen := byName[stage.Name]; !seen {
			byName[stage.Name] = stage
		}
	}

	ordered := make([]Stage, 0, len(StageNames))

	for _, name := range StageNames {
		stage, ok := byName[name]
		if !ok {
			return Chain{}, fmt.Errorf("%w: %q", ErrMissingStage, name)
		}

		ordered = append(ordered, stage)
	}

	return Chain{Stages: ordered}, nil
}

// NewOrderedChain builds a chain that applies stages exactly in the given order.
func NewOrderedChain(stages ...Stage) Chain {
	return Chain{Stages: stages}
}

// Resolve maps a seed to the value produced by the last stage.
func (c Chain) Resolve(seed uint64) uint64 {
	value := seed
	for _, stage := range c.Stages {
		value = stage.Resolve(value)
	}

	return value
}

// Trace returns the value after each stage; the last element equals Resolve(seed).
func (c Chain) Trace(seed uint64) []uint64 {
	trail := make([]uint64, 0, len(c.Stages))

	value := seed
	for _, stage := range c.Stages {
		value = stage.Resolve(value)
		trail = append(trail, value)
	}

	return trail
}

// ResolveRanges maps seed ranges through every stage.
func (c Chain) ResolveRanges(ranges []SeedRange) []SeedRange {
	current := ranges
	for _, stage := range c.Stages {
		current = stage.ResolveRanges(current)
	}

	return current
}
