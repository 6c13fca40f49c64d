package controller

import (
	"bytes"
	"context"
	"testing"
	"time"

	m "almanac.dev/pkg/almanac/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveModel_ProgressAndResult(t *testing.T) {
	model := newSolveModel(200, defaultProgressWidth)

	updated, cmd := model.Update(solveStartMsg{Ranges: 1, Seeds: 200, Threads: 2, Strategy: m.StrategyBruteForce})
	assert.Nil(t, cmd)

	updated, _ = updated.Update(progressMsg{done: 50, total: 200})
	view := updated.View()
	assert.Contains(t, view, "200 seed(s) in 1 range(s), 2 worker(s)")
	assert.Contains(t, view, "Searching")
	assert.Contains(t, view, "50 / 200 seeds")

	updated, cmd = updated.Update(resultMsg{minimum: 35, elapsed: time.Second})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Contains(t, updated.View(), "Lowest location: 35")
	assert.NotContains(t, updated.View(), "Searching")
}

func TestSolveModel_WindowResize(t *testing.T) {
	model := newSolveModel(10, defaultProgressWidth)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	sm, ok := updated.(solveModel)
	require.True(t, ok)
	assert.Equal(t, maxProgressWidth, sm.progress.Width)

	updated, _ = sm.Update(tea.WindowSizeMsg{Width: 5, Height: 40})
	sm, ok = updated.(solveModel)
	require.True(t, ok)
	assert.Equal(t, 10, sm.progress.Width)
}

func TestTUI_StaticViews(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithBrowseMode()))
	ui.DisplayAlmanac(ctx, testChain(), m.RangeSet{{Start: 1, End: 3}})
	ui.DisplayReports(ctx, nil)
	ui.DisplayTrace(ctx, testChain(), 98, testChain().Trace(98))
	ui.Wait(ctx)
	ui.Close(ctx)

	assert.Contains(t, out.String(), "Stages")
	assert.Contains(t, out.String(), "Seed ranges")
	assert.Contains(t, out.String(), "No reports found")
	assert.Contains(t, out.String(), "seed 98 -> soil 50 -> fertilizer 50")
}

func TestTUI_ResultWithoutLiveView(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)

	ui.DisplaySolveStart(context.Background(), SolveInfo{Seeds: 4, Ranges: 4, Threads: 1})
	ui.DisplayProgress(context.Background(), 2, 4)
	ui.DisplayResult(context.Background(), 13, time.Millisecond)

	assert.Contains(t, out.String(), "4 seed(s) in 4 range(s)")
	assert.Contains(t, out.String(), "Lowest location: 13")
}

func TestTUI_SolveModeRunsUntilResult(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, ui.Start(ctx, WithSolveMode(10)))
	ui.DisplaySolveStart(ctx, SolveInfo{Seeds: 10, Ranges: 1, Threads: 1})
	ui.DisplayProgress(ctx, 10, 10)
	ui.DisplayResult(ctx, 7, time.Millisecond)
	ui.Wait(ctx)
	ui.Close(ctx)

	require.NoError(t, ctx.Err())
	assert.Contains(t, out.String(), "Lowest location: 7")
}
