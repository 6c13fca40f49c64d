package model

import (
	"fmt"
	"time"
)

// Strategy names the search algorithm used to find the minimum location.
type Strategy string

const (
	// StrategyBruteForce evaluates the chain on every seed of every range.
	StrategyBruteForce Strategy = "brute-force"
	// StrategyIntervals carries whole ranges through the chain.
	StrategyIntervals Strategy = "intervals"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(value) {
	case StrategyBruteForce, StrategyIntervals:
		return Strategy(value), nil
	case "":
		return StrategyBruteForce, nil
	}

	return "", fmt.Errorf("unknown strategy %q (want %s or %s)", value, StrategyBruteForce, StrategyIntervals)
}

// Report records the outcome of one solve run.
type Report struct {
	ID        string        `yaml:"id"`
	Input     Path          `yaml:"input"`
	InputHash string        `yaml:"input_hash"`
	Mode      string        `yaml:"mode"`
	Strategy  Strategy      `yaml:"strategy"`
	Threads   int           `yaml:"threads"`
	Ranges    int           `yaml:"ranges"`
	Seeds     uint64        `yaml:"seeds"`
	Minimum   uint64        `yaml:"minimum"`
	Elapsed   time.Duration `yaml:"elapsed"`
	CreatedAt time.Time     `yaml:"created_at"`
}
