package model

import "strings"

// Stage is one category-to-category conversion table, e.g. "seed-to-soil".
//
// Rules are consulted in list order and the first covering rule wins, so the
// order is part of the contract and must never be re-sorted. A value no rule
// covers maps to itself.
type Stage struct {
	Name  string
	Rules []MapRule
}

// Resolve maps a source value to its destination value.
func (s Stage) Resolve(value uint64) uint64 {
	for _, rule := range s.Rules {
		if rule.Covers(value) {
			return rule.Apply(value)
		}
	}

	return value
}

// ResolveRanges maps a set of source ranges to the set of destination ranges
// they cover. Each rule only claims the parts of a range that no earlier rule
// claimed; whatever is left unclaimed passes through unchanged.
func (s Stage) ResolveRanges(in []SeedRange) []SeedRange {
	out := make([]SeedRange, 0, len(in))
	pending := append([]SeedRange(nil), in...)

	for _, rule := range s.Rules {
		if len(pending) == 0 {
			break
		}

		source := SeedRange{Start: rule.SourceStart, End: rule.SourceEnd()}
		unclaimed := make([]SeedRange, 0, len(pending))

		for _, r := range pending {
			overlap, ok := r.Intersect(source)
			if !ok {
				unclaimed = append(unclaimed, r)
				continue
			}

			out = append(out, SeedRange{Start: rule.Apply(overlap.Start), End: rule.Apply(overlap.End)})

			if r.Start < overlap.Start {
				unclaimed = append(unclaimed, SeedRange{Start: r.Start, End: overlap.Start - 1})
			}

			if overlap.End < r.End {
				unclaimed = append(unclaimed, SeedRange{Start: overlap.End + 1, End: r.End})
			}
		}

		pending = unclaimed
	}

	return append(out, pending...)
}

// Source returns the category the stage converts from ("seed" for "seed-to-soil").
func (s Stage) Source() string {
	source, _, _ := strings.Cut(s.Name, "-to-")
	return source
}

// Destination returns the category the stage converts to ("soil" for "seed-to-soil").
func (s Stage) Destination() string {
	_, destination, found := strings.Cut(s.Name, "-to-")
	if !found {
		return ""
	}

	return destination
}
