package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFSAdapter_ReadAndHash(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalFSAdapter()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleAlmanac), 0o600))

	content, err := adapter.ReadFile(ctx, m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, sampleAlmanac, string(content))

	hash, err := adapter.HashFile(ctx, m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256([]byte(sampleAlmanac))), hash)

	info, err := adapter.FileInfo(ctx, m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestLocalFSAdapter_MissingFile(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalFSAdapter()
	missing := m.Path(filepath.Join(t.TempDir(), "missing.txt"))

	_, err := adapter.ReadFile(ctx, missing)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = adapter.HashFile(ctx, missing)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalFSAdapter_WriteAndGlob(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalFSAdapter()

	dir := adapter.JoinPath(ctx, t.TempDir(), "nested", "reports")
	require.NoError(t, adapter.MkdirAll(ctx, dir))

	for _, name := range []string{"a.yaml", "b.yaml", "c.txt"} {
		require.NoError(t, adapter.WriteFile(ctx, adapter.JoinPath(ctx, string(dir), name), []byte("x"), 0o600))
	}

	matches, err := adapter.Glob(ctx, filepath.Join(string(dir), "*.yaml"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []m.Path{
		adapter.JoinPath(ctx, string(dir), "a.yaml"),
		adapter.JoinPath(ctx, string(dir), "b.yaml"),
	}, matches)
}

func TestLocalFSAdapter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	adapter := NewLocalFSAdapter()

	_, err := adapter.ReadFile(ctx, "whatever")
	require.ErrorIs(t, err, context.Canceled)

	err = adapter.MkdirAll(ctx, "whatever")
	require.ErrorIs(t, err, context.Canceled)
}
