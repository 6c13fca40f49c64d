// Package controller renders almanac workflows to the terminal.
package controller

import (
	"context"
	"os"
	"time"

	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeBrowse StartMode = iota
	ModeSolve
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total uint64
}

// WithBrowseMode sets the UI to print static views.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

// WithSolveMode sets the UI to follow a search over total seeds.
func WithSolveMode(total uint64) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSolve
		c.total = total
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeBrowse}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// SolveInfo describes a search about to start.
type SolveInfo struct {
	Ranges   int
	Seeds    uint64
	Threads  int
	Strategy m.Strategy
	Mode     m.SeedMode
}

// UI defines how workflows present their progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish
	DisplayAlmanac(ctx context.Context, chain m.Chain, ranges m.RangeSet)
	DisplaySolveStart(ctx context.Context, info SolveInfo)
	DisplayProgress(ctx context.Context, done, total uint64)
	DisplayResult(ctx context.Context, minimum uint64, elapsed time.Duration)
	DisplayTrace(ctx context.Context, chain m.Chain, seed uint64, trail []uint64)
	DisplayReports(ctx context.Context, reports []m.Report)
}

// NewUI returns the interactive TUI when useTTY is set and the plain text UI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
