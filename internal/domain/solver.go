package domain

import (
	"context"
	"log/slog"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	m "almanac.dev/pkg/almanac/internal/model"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultChunkSize is the number of seeds a worker evaluates per unit of work.
	DefaultChunkSize uint64 = 1 << 16

	// cancelCheckInterval is how many seeds a worker evaluates between context checks.
	cancelCheckInterval = 1 << 12
)

// Solver finds the lowest value a chain produces for any seed in a range set.
type Solver interface {
	MinimumChainOutput(ctx context.Context, chain m.Chain, ranges m.RangeSet) (uint64, error)
}

// SolverOption configures a Solver.
type SolverOption func(*solverConfig)

type solverConfig struct {
	threads   int
	chunkSize uint64
	strategy  m.Strategy
	progress  func(done uint64)
}

// WithThreads limits the number of concurrent workers. Values below one use runtime.NumCPU.
func WithThreads(threads int) SolverOption {
	return func(c *solverConfig) {
		c.threads = threads
	}
}

// WithChunkSize sets how many consecutive seeds one worker evaluates at a time.
func WithChunkSize(size uint64) SolverOption {
	return func(c *solverConfig) {
		c.chunkSize = size
	}
}

// WithStrategy selects the search algorithm.
func WithStrategy(strategy m.Strategy) SolverOption {
	return func(c *solverConfig) {
		c.strategy = strategy
	}
}

// WithProgress registers a callback invoked with the number of seeds covered
// by every finished unit of work. It is called from worker goroutines.
func WithProgress(fn func(done uint64)) SolverOption {
	return func(c *solverConfig) {
		c.progress = fn
	}
}

type solver struct {
	solverConfig
}

// NewSolver creates a Solver. Without options it enumerates every seed using
// one worker per CPU.
func NewSolver(options ...SolverOption) Solver {
	cfg := solverConfig{
		threads:   runtime.NumCPU(),
		chunkSize: DefaultChunkSize,
		strategy:  m.StrategyBruteForce,
	}

	for _, option := range options {
		option(&cfg)
	}

	if cfg.threads <= 0 {
		cfg.threads = runtime.NumCPU()
	}

	if cfg.chunkSize == 0 {
		cfg.chunkSize = DefaultChunkSize
	}

	return &solver{solverConfig: cfg}
}

// MinimumChainOutput returns the minimum of chain.Resolve(v) over every v in
// every range. The ranges are validated before any work starts.
func (s *solver) MinimumChainOutput(ctx context.Context, chain m.Chain, ranges m.RangeSet) (uint64, error) {
	if err := ranges.Validate(); err != nil {
		slog.Error("Rejected seed ranges", "ranges", len(ranges), "error", err)
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	slog.Debug("Starting minimum search",
		"strategy", s.strategy, "threads", s.threads, "chunkSize", s.chunkSize,
		"ranges", len(ranges), "seeds", ranges.Size(), "stages", len(chain.Stages))

	started := time.Now()

	var (
		minimum uint64
		err     error
	)

	switch s.strategy {
	case m.StrategyIntervals:
		minimum, err = s.minimumByIntervals(ctx, chain, ranges)
	default:
		minimum, err = s.minimumByEnumeration(ctx, chain, ranges)
	}

	if err != nil {
		slog.Debug("Minimum search stopped", "error", err, "elapsed", time.Since(started))
		return 0, err
	}

	slog.Debug("Minimum search finished", "minimum", minimum, "elapsed", time.Since(started))

	return minimum, nil
}

// minimumByEnumeration splits every range into chunks and evaluates the chain
// on each seed, folding per-chunk minima into one result.
func (s *solver) minimumByEnumeration(ctx context.Context, chain m.Chain, ranges m.RangeSet) (uint64, error) {
	lowest := newMinReducer()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.threads)

	for _, r := range ranges {
		if err := s.scheduleChunks(groupCtx, group, chain, r, lowest); err != nil {
			break
		}
	}

	if err := group.Wait(); err != nil {
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return lowest.Load(), nil
}

func (s *solver) scheduleChunks(ctx context.Context, group *errgroup.Group, chain m.Chain, r m.SeedRange, lowest *minReducer) error {
	start := r.Start

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := r.End
		if end-start >= s.chunkSize {
			end = start + s.chunkSize - 1
		}

		chunk := m.SeedRange{Start: start, End: end}

		group.Go(func() error {
			return s.evaluateChunk(ctx, chain, chunk, lowest)
		})

		if end == r.End {
			return nil
		}

		start = end + 1
	}
}

func (s *solver) evaluateChunk(ctx context.Context, chain m.Chain, chunk m.SeedRange, lowest *minReducer) error {
	local := uint64(math.MaxUint64)

	for seed := chunk.Start; ; seed++ {
		if (seed-chunk.Start)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		local = min(local, chain.Resolve(seed))

		if seed == chunk.End {
			break
		}
	}

	lowest.Fold(local)
	s.reportProgress(chunk.Len())

	return nil
}

// minimumByIntervals maps whole ranges through the chain and takes the
// smallest lower bound of the resulting intervals.
func (s *solver) minimumByIntervals(ctx context.Context, chain m.Chain, ranges m.RangeSet) (uint64, error) {
	lowest := newMinReducer()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.threads)

	for _, r := range ranges {
		if groupCtx.Err() != nil {
			break
		}

		current := r

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			for _, image := range chain.ResolveRanges([]m.SeedRange{current}) {
				lowest.Fold(image.Start)
			}

			s.reportProgress(current.Len())

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return lowest.Load(), nil
}

func (s *solver) reportProgress(done uint64) {
	if s.progress != nil {
		s.progress(done)
	}
}

// minReducer holds the running minimum shared by all workers.
type minReducer struct {
	value atomic.Uint64
}

func newMinReducer() *minReducer {
	r := &minReducer{}
	r.value.Store(math.MaxUint64)

	return r
}

// Fold lowers the stored minimum to candidate if candidate is smaller.
func (r *minReducer) Fold(candidate uint64) {
	for {
		current := r.value.Load()
		if candidate >= current || r.value.CompareAndSwap(current, candidate) {
			return
		}
	}
}

func (r *minReducer) Load() uint64 {
	return r.value.Load()
}
