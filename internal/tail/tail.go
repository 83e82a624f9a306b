// Package tail follows growing log files and republishes appended
// lines through the activity logger, so the output of an external
// build or service can drive the status line.
package tail

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/schmitthub/pawgress/internal/logger"
	"github.com/schmitthub/pawgress/pkg/actlog"
)

// followState tracks one followed file: its activity, the read offset
// and any trailing partial line waiting for its newline.
type followState struct {
	path   string
	act    *actlog.Activity
	file   *os.File
	offset int64
	carry  []byte
}

// Follow replays the current contents of each file and then streams
// appended lines until ctx is canceled. Every file gets its own
// activity; complete lines become build log results and the read
// offset is published as byte progress. Files that do not exist yet
// are picked up when they appear.
func Follow(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no files to follow")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	states := make(map[string]*followState, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		if _, ok := states[p]; ok {
			continue
		}
		st := &followState{
			path: p,
			act:  actlog.StartActivity(actlog.ActivityUnknown, "tailing "+filepath.Base(p)),
		}
		states[p] = st
		defer st.close()

		// Watching the parent directory covers files that appear later
		// and atomic rename-into-place rewrites.
		dir := filepath.Dir(p)
		if !dirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}

	for _, st := range states {
		st.drain()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			st, mine := states[filepath.Clean(event.Name)]
			if !mine {
				continue
			}
			switch {
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				st.reset()
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				st.drain()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// drain reads everything between the current offset and EOF, emitting
// complete lines and keeping the remainder for the next round.
func (st *followState) drain() {
	if st.file == nil {
		f, err := os.Open(st.path)
		if err != nil {
			return
		}
		st.file = f
		st.offset = 0
		st.carry = nil
	}

	info, err := st.file.Stat()
	if err != nil {
		st.reset()
		return
	}
	size := info.Size()
	if size < st.offset {
		// Truncated in place; start over.
		st.offset = 0
		st.carry = nil
	}
	if size == st.offset {
		return
	}

	chunk := make([]byte, size-st.offset)
	n, err := st.file.ReadAt(chunk, st.offset)
	if err != nil && err != io.EOF {
		logger.Warn().Err(err).Str("file", st.path).Msg("read failed while tailing")
		return
	}
	st.offset += int64(n)
	st.carry = append(st.carry, chunk[:n]...)

	for {
		i := bytes.IndexByte(st.carry, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimRight(string(st.carry[:i]), "\r")
		st.carry = st.carry[i+1:]
		if line != "" {
			st.act.Result(actlog.ResultBuildLogLine, actlog.StringField(line))
		}
	}

	st.act.Progress(uint64(st.offset), uint64(size), 1, 0)
}

// reset drops the open handle so the next event reopens the file from
// the start. Rotation and deletion both land here.
func (st *followState) reset() {
	if st.file != nil {
		st.file.Close()
		st.file = nil
	}
	st.offset = 0
	st.carry = nil
}

func (st *followState) close() {
	st.reset()
	st.act.Stop()
}
