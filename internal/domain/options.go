package domain

import (
	"runtime"

	m "almanac.dev/pkg/almanac/internal/model"
)

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}

	return threads
}

func normalizeStrategy(strategy m.Strategy) m.Strategy {
	if strategy == "" {
		return m.StrategyBruteForce
	}

	return strategy
}
