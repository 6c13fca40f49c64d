// Package domain holds the almanac workflows and the minimum-location solver.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"almanac.dev/pkg/almanac/internal/adapter"
	"almanac.dev/pkg/almanac/internal/controller"
	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/google/uuid"
)

// SolveArgs contains the arguments for finding the lowest location.
type SolveArgs struct {
	Input     m.Path
	Mode      m.SeedMode
	Strategy  m.Strategy
	Threads   int
	ChunkSize uint64
	Timeout   time.Duration
	Reports   m.Path
	NoReport  bool
}

// ResolveArgs contains the arguments for tracing individual seeds.
type ResolveArgs struct {
	Input m.Path
	Seeds []uint64
}

// ListArgs contains the arguments for listing an almanac.
type ListArgs struct {
	Input m.Path
	Mode  m.SeedMode
}

// ViewArgs contains the arguments for viewing saved reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the commands the CLI can run.
type Workflow interface {
	Solve(ctx context.Context, args SolveArgs) error
	Resolve(ctx context.Context, args ResolveArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

// SolverFactory builds a Solver for one run.
type SolverFactory func(options ...SolverOption) Solver

type workflow struct {
	adapter.FSAdapter
	adapter.AlmanacParser
	adapter.ReportStore
	controller.UI
	newSolver SolverFactory
	now       func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.FSAdapter,
	parser adapter.AlmanacParser,
	reportStore adapter.ReportStore,
	ui controller.UI,
	newSolver SolverFactory,
) Workflow {
	if newSolver == nil {
		newSolver = NewSolver
	}

	return &workflow{
		FSAdapter:     fsAdapter,
		AlmanacParser: parser,
		ReportStore:   reportStore,
		UI:            ui,
		newSolver:     newSolver,
		now:           time.Now,
	}
}

// Solve loads the almanac, searches every seed range for the lowest location
// and saves a report of the run.
func (w *workflow) Solve(ctx context.Context, args SolveArgs) error {
	if args.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, args.Timeout)
		defer cancel()
	}

	almanac, hash, err := w.loadAlmanac(ctx, args.Input)
	if err != nil {
		return err
	}

	chain, ranges, err := w.prepare(almanac, args.Mode)
	if err != nil {
		return err
	}

	if err := ranges.Validate(); err != nil {
		slog.Error("Invalid seed ranges", "input", args.Input, "error", err)
		return fmt.Errorf("seed ranges: %w", err)
	}

	total := ranges.Size()
	info := controller.SolveInfo{
		Ranges:   len(ranges),
		Seeds:    total,
		Threads:  normalizeThreads(args.Threads),
		Strategy: normalizeStrategy(args.Strategy),
		Mode:     args.Mode,
	}

	if err := w.Start(ctx, controller.WithSolveMode(total)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	w.DisplaySolveStart(ctx, info)

	var done atomic.Uint64

	solver := w.newSolver(
		WithThreads(info.Threads),
		WithChunkSize(args.ChunkSize),
		WithStrategy(info.Strategy),
		WithProgress(func(n uint64) {
			w.DisplayProgress(ctx, done.Add(n), total)
		}),
	)

	started := w.now()
	minimum, err := solver.MinimumChainOutput(ctx, chain, ranges)
	elapsed := w.now().Sub(started)

	if err != nil {
		w.Close(ctx)
		slog.Error("Search failed", "input", args.Input, "elapsed", elapsed, "error", err)

		return fmt.Errorf("search: %w", err)
	}

	slog.Info("Search finished", "input", args.Input, "minimum", minimum, "elapsed", elapsed)

	w.DisplayResult(ctx, minimum, elapsed)
	w.Wait(ctx)
	w.Close(ctx)

	if args.NoReport || args.Reports == "" {
		return nil
	}

	report := m.Report{
		ID:        uuid.NewString(),
		Input:     args.Input,
		InputHash: hash,
		Mode:      args.Mode.String(),
		Strategy:  info.Strategy,
		Threads:   info.Threads,
		Ranges:    info.Ranges,
		Seeds:     total,
		Minimum:   minimum,
		Elapsed:   elapsed,
		CreatedAt: started.UTC(),
	}

	if _, err := w.SaveReport(ctx, args.Reports, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	return nil
}

// Resolve shows the value of every requested seed after each stage.
func (w *workflow) Resolve(ctx context.Context, args ResolveArgs) error {
	if len(args.Seeds) == 0 {
		return fmt.Errorf("resolve: %w", m.ErrEmptyInput)
	}

	almanac, _, err := w.loadAlmanac(ctx, args.Input)
	if err != nil {
		return err
	}

	chain, err := m.NewChain(almanac.Stages)
	if err != nil {
		slog.Error("Failed to assemble chain", "input", args.Input, "error", err)
		return fmt.Errorf("assemble chain: %w", err)
	}

	if err := w.Start(ctx, controller.WithBrowseMode()); err != nil {
		return err
	}

	defer w.Close(ctx)

	for _, seed := range args.Seeds {
		w.DisplayTrace(ctx, chain, seed, chain.Trace(seed))
	}

	return nil
}

// List shows the stages of the almanac and the seed ranges derived from it.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	almanac, _, err := w.loadAlmanac(ctx, args.Input)
	if err != nil {
		return err
	}

	chain, ranges, err := w.prepare(almanac, args.Mode)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithBrowseMode()); err != nil {
		return err
	}

	defer w.Close(ctx)

	w.DisplayAlmanac(ctx, chain, ranges)

	return nil
}

// View shows previously saved reports.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		slog.Error("Failed to load reports", "dir", args.Reports, "error", err)
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.Start(ctx, controller.WithBrowseMode()); err != nil {
		return err
	}

	defer w.Close(ctx)

	w.DisplayReports(ctx, reports)

	return nil
}

func (w *workflow) loadAlmanac(ctx context.Context, input m.Path) (m.Almanac, string, error) {
	content, err := w.ReadFile(ctx, input)
	if err != nil {
		slog.Error("Failed to read almanac", "input", input, "error", err)
		return m.Almanac{}, "", fmt.Errorf("read almanac: %w", err)
	}

	hash, err := w.HashFile(ctx, input)
	if err != nil {
		slog.Error("Failed to hash almanac", "input", input, "error", err)
		return m.Almanac{}, "", fmt.Errorf("hash almanac: %w", err)
	}

	almanac, err := w.Parse(ctx, content)
	if err != nil {
		slog.Error("Failed to parse almanac", "input", input, "error", err)
		return m.Almanac{}, "", fmt.Errorf("parse almanac: %w", err)
	}

	slog.Debug("Loaded almanac", "input", input, "seeds", len(almanac.Seeds), "stages", len(almanac.Stages))

	return almanac, hash, nil
}

func (w *workflow) prepare(almanac m.Almanac, mode m.SeedMode) (m.Chain, m.RangeSet, error) {
	chain, err := m.NewChain(almanac.Stages)
	if err != nil {
		slog.Error("Failed to assemble chain", "error", err)
		return m.Chain{}, nil, fmt.Errorf("assemble chain: %w", err)
	}

	ranges, err := m.NewRangeSet(almanac.Seeds, mode)
	if err != nil {
		slog.Error("Failed to build seed ranges", "mode", mode, "error", err)
		return m.Chain{}, nil, fmt.Errorf("seed ranges: %w", err)
	}

	return chain, ranges, nil
}
