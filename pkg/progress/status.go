package progress

import (
	"fmt"
	"strings"

	"github.com/schmitthub/pawgress/pkg/actlog"
)

const mib = 1024.0 * 1024.0

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31;1m"
	ansiGreen = "\x1b[32;1m"
	ansiBlue  = "\x1b[34;1m"

	eraseToEOL = "\x1b[K"
)

// status renders the bracketed summary: one clause per activity type
// with anything to report, joined by ", ". Callers hold the lock.
func (b *Bar) status() string {
	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}

	add(b.clause(actlog.ActivityBuild, "%s built", "%d", 1))

	copied := b.clause(actlog.ActivityCopyPaths, "%s copied", "%d", 1)
	bytes := b.clause(actlog.ActivityCopyPath, "%s MiB", "%.1f", mib)
	if copied != "" || bytes != "" {
		if copied == "" {
			copied = "0 copied"
		}
		if bytes != "" {
			copied += " (" + bytes + ")"
		}
		add(copied)
	}

	add(b.clause(actlog.ActivityDownload, "%s MiB DL", "%.1f", mib))

	if s := b.clause(actlog.ActivityOptimiseStore, "%s paths optimised", "%d", 1); s != "" {
		s += fmt.Sprintf(", %.1f MiB / %d inodes freed",
			float64(b.bytesLinked)/mib, b.filesLinked)
		add(s)
	}

	// TODO: stop rendering verified paths green; done does not mean
	// the path passed verification, just that it was checked.
	add(b.clause(actlog.ActivityVerifyPaths, "%s paths verified", "%d", 1))

	if b.corruptedPaths > 0 {
		add(b.paint(ansiRed, fmt.Sprintf("%d corrupted", b.corruptedPaths)))
	}
	if b.untrustedPaths > 0 {
		add(b.paint(ansiRed, fmt.Sprintf("%d untrusted", b.untrustedPaths)))
	}

	return strings.Join(parts, ", ")
}

// clause summarizes one activity type. Counters from stopped
// activities and from every live one are summed; the expectation
// starts from the stopped baseline so finished work never reads as
// outstanding, then yields to a larger declared total.
func (b *Bar) clause(typ actlog.ActivityType, format, numFmt string, unit float64) string {
	ts := b.byType[typ]
	if ts == nil {
		return ""
	}

	done, expected, failed := ts.done, ts.done, ts.failed
	running := uint64(0)
	for _, el := range ts.live {
		info := el.Value.(*actInfo)
		done += info.done
		expected += info.expected
		running += info.running
		failed += info.failed
	}
	expected = max(expected, ts.expected)

	if done == 0 && expected == 0 && running == 0 && failed == 0 {
		return ""
	}

	var s string
	switch {
	case running > 0:
		s = b.paint(ansiBlue, num(numFmt, running, unit)) +
			"/" + b.paint(ansiGreen, num(numFmt, done, unit)) +
			"/" + num(numFmt, expected, unit)
	case expected != done:
		s = b.paint(ansiGreen, num(numFmt, done, unit)) +
			"/" + num(numFmt, expected, unit)
	case done > 0:
		s = b.paint(ansiGreen, num(numFmt, done, unit))
	default:
		s = num(numFmt, done, unit)
	}
	s = fmt.Sprintf(format, s)

	if failed > 0 {
		s += fmt.Sprintf(" (%s)",
			b.paint(ansiRed, fmt.Sprintf("%d failed", uint64(float64(failed)/unit))))
	}
	return s
}

// num formats a counter, scaling by unit for fractional formats.
func num(numFmt string, v uint64, unit float64) string {
	if numFmt == "%d" {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf(numFmt, float64(v)/unit)
}

func (b *Bar) paint(color, s string) string {
	if !b.color {
		return s
	}
	return color + s + ansiReset
}
