package init

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/pawgress/internal/cmdutil"
	"github.com/schmitthub/pawgress/internal/config"
)

func newTestOptions(t *testing.T) (*InitOptions, *cmdutil.TestIOStreams) {
	t.Helper()
	t.Setenv("PAWGRESS_HOME", t.TempDir())

	tio := cmdutil.NewTestIOStreams()
	return &InitOptions{
		IOStreams:      tio.IOStreams,
		SettingsLoader: config.NewSettingsLoader,
	}, tio
}

func TestNewCmdInit(t *testing.T) {
	tio := cmdutil.NewTestIOStreams()
	f := &cmdutil.Factory{IOStreams: tio.IOStreams}

	var gotOpts *InitOptions
	cmd := NewCmdInit(f, func(_ context.Context, opts *InitOptions) error {
		gotOpts = opts
		return nil
	})

	cmd.SetArgs([]string{"--force"})
	err := cmd.Execute()
	require.NoError(t, err)
	require.NotNil(t, gotOpts, "runF was not called")
	assert.True(t, gotOpts.Force)
	assert.Equal(t, tio.IOStreams, gotOpts.IOStreams)
}

func TestInitRun_CreatesFile(t *testing.T) {
	opts, tio := newTestOptions(t)

	require.NoError(t, initRun(context.Background(), opts))

	loader, err := opts.SettingsLoader()
	require.NoError(t, err)
	data, err := os.ReadFile(loader.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "logging:")
	assert.Contains(t, tio.ErrBuf.String(), "[ok] Created: "+loader.Path())
}

func TestInitRun_ExistingFileUntouched(t *testing.T) {
	opts, tio := newTestOptions(t)

	home := os.Getenv("PAWGRESS_HOME")
	path := filepath.Join(home, config.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  max_size_mb: 123\n"), 0o644))

	require.NoError(t, initRun(context.Background(), opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_size_mb: 123")
	assert.Contains(t, tio.ErrBuf.String(), "[warn] Settings already exist")
}

func TestInitRun_ForceOverwrites(t *testing.T) {
	opts, tio := newTestOptions(t)
	opts.Force = true

	home := os.Getenv("PAWGRESS_HOME")
	path := filepath.Join(home, config.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("junk"), 0o644))

	require.NoError(t, initRun(context.Background(), opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "junk")
	assert.Contains(t, string(data), "# Pawgress Settings")
	assert.Contains(t, tio.ErrBuf.String(), "[ok] Created: "+path)
}
