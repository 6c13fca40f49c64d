package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

func testChain() m.Chain {
	return m.NewOrderedChain(
		m.Stage{Name: "seed-to-soil", Rules: []m.MapRule{
			{SourceStart: 98, DestStart: 50, Length: 2},
			{SourceStart: 50, DestStart: 52, Length: 48},
		}},
		m.Stage{Name: "soil-to-fertilizer"},
	)
}

func TestSimpleUI_DisplayAlmanac(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewSimpleUI(cmd)

	ui.DisplayAlmanac(context.Background(), testChain(), m.RangeSet{{Start: 79, End: 92}, {Start: 55, End: 67}})

	output := out.String()
	assert.Contains(t, output, "seed-to-soil")
	assert.Contains(t, output, "98..=99")
	assert.Contains(t, output, "50..=51")
	assert.Contains(t, output, "-48")
	assert.Contains(t, output, "+2")
	assert.Contains(t, output, "identity")
	assert.Contains(t, output, "Stages 2")
	assert.Contains(t, output, "Ranges 2")
	assert.Contains(t, output, "27")
}

func TestSimpleUI_SolveOutput(t *testing.T) {
	cmd, out, errOut := newTestCmd()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithSolveMode(100)))
	ui.DisplaySolveStart(ctx, SolveInfo{Ranges: 2, Seeds: 100, Threads: 4, Strategy: m.StrategyBruteForce, Mode: m.SeedModePairs})

	for done := uint64(5); done <= 100; done += 5 {
		ui.DisplayProgress(ctx, done, 100)
	}

	ui.DisplayResult(ctx, 46, 1500*time.Millisecond)
	ui.Wait(ctx)
	ui.Close(ctx)

	assert.Contains(t, out.String(), "Searching 100 seed(s) in 2 range(s) with 4 worker(s) (mode pairs, strategy brute-force)")
	assert.Contains(t, out.String(), "Lowest location: 46 (1.5s)")
	assert.Equal(t, 10, strings.Count(errOut.String(), "Progress:"))
	assert.Contains(t, errOut.String(), "Progress: 100%")
}

func TestSimpleUI_DisplayTrace(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewSimpleUI(cmd)
	chain := testChain()

	ui.DisplayTrace(context.Background(), chain, 79, chain.Trace(79))

	assert.Equal(t, "seed 79 -> soil 81 -> fertilizer 81\n", out.String())
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewSimpleUI(cmd)

	ui.DisplayReports(context.Background(), nil)
	assert.Contains(t, out.String(), "No reports found")

	out.Reset()
	ui.DisplayReports(context.Background(), []m.Report{{
		ID:        "0123456789abcdef",
		Input:     "input.txt",
		Mode:      "pairs",
		Strategy:  m.StrategyIntervals,
		Seeds:     27,
		Minimum:   46,
		Elapsed:   time.Second,
		CreatedAt: time.Now(),
	}})

	assert.Contains(t, out.String(), "01234567")
	assert.NotContains(t, out.String(), "0123456789abcdef")
	assert.Contains(t, out.String(), "input.txt")
	assert.Contains(t, out.String(), "46")
}

func TestSimpleUI_CancelledContextPrintsNothing(t *testing.T) {
	cmd, out, errOut := newTestCmd()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
	ui.DisplayResult(ctx, 1, time.Second)
	ui.DisplayProgress(ctx, 1, 1)

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestNewUI(t *testing.T) {
	cmd, _, _ := newTestCmd()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(nil))
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "+0", formatOffset(m.MapRule{SourceStart: 5, DestStart: 5, Length: 1}))
	assert.Equal(t, "+2", formatOffset(m.MapRule{SourceStart: 50, DestStart: 52, Length: 1}))
	assert.Equal(t, "-48", formatOffset(m.MapRule{SourceStart: 98, DestStart: 50, Length: 1}))
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 1.0, percent(0, 0), 1e-9)
	assert.InDelta(t, 0.5, percent(5, 10), 1e-9)
	assert.InDelta(t, 1.0, percent(20, 10), 1e-9)
}
