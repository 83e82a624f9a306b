package path

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/pawgress/internal/cmdutil"
	"github.com/schmitthub/pawgress/internal/config"
)

func TestNewCmdPath(t *testing.T) {
	tio := cmdutil.NewTestIOStreams()
	f := &cmdutil.Factory{IOStreams: tio.IOStreams}

	var gotOpts *PathOptions
	cmd := NewCmdPath(f, func(_ context.Context, opts *PathOptions) error {
		gotOpts = opts
		return nil
	})

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.NoError(t, err)
	require.NotNil(t, gotOpts, "runF was not called")
	assert.Equal(t, tio.IOStreams, gotOpts.IOStreams)
}

func TestPathRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PAWGRESS_HOME", home)

	tio := cmdutil.NewTestIOStreams()
	opts := &PathOptions{
		IOStreams:      tio.IOStreams,
		SettingsLoader: config.NewSettingsLoader,
	}

	require.NoError(t, pathRun(context.Background(), opts))
	assert.Equal(t, filepath.Join(home, "settings.yaml")+"\n", tio.OutBuf.String())
}
