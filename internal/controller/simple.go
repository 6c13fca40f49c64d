package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/spf13/cobra"
)

// progressSteps is how many progress lines SimpleUI prints over a whole search.
const progressSteps = 10

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command

	mu           sync.Mutex
	lastProgress int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.lastProgress = 0
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait returns immediately; SimpleUI never blocks.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayAlmanac prints the chain's stages and the seed ranges as tables.
func (s *SimpleUI) DisplayAlmanac(ctx context.Context, chain m.Chain, ranges m.RangeSet) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s\n%s", renderStagesTable(chain), renderRangesTable(ranges))
}

// DisplaySolveStart announces the search.
func (s *SimpleUI) DisplaySolveStart(ctx context.Context, info SolveInfo) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Searching %d seed(s) in %d range(s) with %d worker(s) (mode %s, strategy %s)\n",
		info.Seeds, info.Ranges, info.Threads, info.Mode, info.Strategy)
}

// DisplayProgress prints a line to stderr each time another tenth of the seeds is done.
func (s *SimpleUI) DisplayProgress(ctx context.Context, done, total uint64) {
	if ctx.Err() != nil {
		return
	}

	step := int(percent(done, total) * progressSteps)

	s.mu.Lock()
	defer s.mu.Unlock()

	if step <= s.lastProgress {
		return
	}

	s.lastProgress = step
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "Progress: %d%%\n", step*100/progressSteps)
}

// DisplayResult prints the lowest location found.
func (s *SimpleUI) DisplayResult(ctx context.Context, minimum uint64, elapsed time.Duration) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Lowest location: %d (%s)\n", minimum, elapsed.Round(time.Millisecond))
}

// DisplayTrace prints the value of a seed after every stage.
func (s *SimpleUI) DisplayTrace(ctx context.Context, chain m.Chain, seed uint64, trail []uint64) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", renderTrace(chain, seed, trail))
}

// DisplayReports prints saved reports as a table.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) {
	if ctx.Err() != nil {
		return
	}

	if len(reports) == 0 {
		s.printf("No reports found\n")
		return
	}

	s.printf("\n%s", renderReportsTable(reports))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
