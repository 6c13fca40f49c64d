package cmd

import (
	"bytes"
	"testing"

	"almanac.dev/pkg/almanac/internal/domain"
	domainmocks "almanac.dev/pkg/almanac/internal/domain/mocks"
	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseSeeds(t *testing.T) {
	seeds, err := parseSeeds([]string{"79", "0", "18446744073709551615"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{79, 0, 18446744073709551615}, seeds)

	_, err = parseSeeds([]string{"79", "-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"-1"`)

	_, err = parseSeeds([]string{"18446744073709551616"})
	require.Error(t, err)
}

func TestResolveCmd_PassesSeeds(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newResolveCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Resolve", mock.Anything, domain.ResolveArgs{
		Input: m.Path("input.txt"),
		Seeds: []uint64{79, 14},
	}).Return(nil)

	cmd.SetArgs([]string{"resolve", "input.txt", "79", "14"})
	require.NoError(t, cmd.Execute())
}

func TestResolveCmd_RequiresSeeds(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newResolveCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"resolve", "input.txt"})
	require.Error(t, cmd.Execute())

	cmd.SetArgs([]string{"resolve", "input.txt", "seven"})
	require.Error(t, cmd.Execute())
}
