package tail

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/shlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/pawgress/internal/cmdutil"
)

// syncBuffer lets the test poll output while tailRun is still writing.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestNewCmdTail(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPaths []string
		wantPlain bool
		wantErr   string
	}{
		{
			name:      "single file",
			input:     "build.log",
			wantPaths: []string{"build.log"},
		},
		{
			name:      "several files with flags",
			input:     "--plain --no-color a.log b.log",
			wantPaths: []string{"a.log", "b.log"},
			wantPlain: true,
		},
		{
			name:    "no files",
			input:   "",
			wantErr: "requires at least 1 argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tio := cmdutil.NewTestIOStreams()
			f := &cmdutil.Factory{IOStreams: tio.IOStreams}

			var gotOpts *TailOptions
			cmd := NewCmdTail(f, func(_ context.Context, opts *TailOptions) error {
				gotOpts = opts
				return nil
			})

			argv, err := shlex.Split(tt.input)
			require.NoError(t, err)
			cmd.SetArgs(argv)
			cmd.SetIn(&bytes.Buffer{})
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			_, err = cmd.ExecuteC()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, gotOpts)
			assert.Equal(t, tt.wantPaths, gotOpts.Paths)
			assert.Equal(t, tt.wantPlain, gotOpts.Plain)
		})
	}
}

func TestTailRunPlainPrintsLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.log")
	require.NoError(t, os.WriteFile(path, []byte("compiling main.go\nlinking\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	tio := cmdutil.NewTestIOStreams()
	sb := &syncBuffer{}
	tio.IOStreams.Out = sb
	opts := &TailOptions{
		IOStreams: tio.IOStreams,
		Paths:     []string{path},
		Plain:     true,
	}

	done := make(chan error, 1)
	go func() { done <- tailRun(ctx, opts) }()

	require.Eventually(t, func() bool {
		return strings.Contains(sb.String(), "linking")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	out := sb.String()
	assert.Contains(t, out, "tailing build.log")
	assert.Contains(t, out, "compiling main.go")
}
