package progress

import (
	"os"
	"sync"

	"github.com/schmitthub/pawgress/internal/signals"
	"github.com/schmitthub/pawgress/internal/term"
	"github.com/schmitthub/pawgress/pkg/actlog"
)

// Activate installs a Bar on stderr as the process logger when stderr
// is a terminal. Width and color are probed from the terminal first,
// so explicit options win, and the bar follows SIGWINCH for as long
// as it is installed. The returned restore closes the bar and puts
// the previous logger back; it is safe to call more than once. When
// stderr is not a terminal nothing happens and active is false.
func Activate(opts ...Option) (restore func(), active bool) {
	t := term.FromEnv()
	if !t.IsTTY() {
		return func() {}, false
	}

	probed := []Option{
		WithWidth(t.Width()),
		WithColor(t.IsColorEnabled()),
	}
	b := New(os.Stderr, append(probed, opts...)...)

	resize := signals.NewResizeHandler(
		func(_, width uint) error {
			b.SetWidth(int(width))
			return nil
		},
		func() (int, int, error) {
			return term.FromEnv().Width(), 0, nil
		},
	)
	resize.Start()

	prev := actlog.SetCurrent(b)
	var once sync.Once
	restore = func() {
		once.Do(func() {
			resize.Stop()
			_ = b.Close()
			actlog.SetCurrent(prev)
		})
	}
	return restore, true
}
