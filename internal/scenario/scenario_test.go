package scenario

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/pawgress/pkg/actlog"
	"github.com/schmitthub/pawgress/pkg/actlog/actlogtest"
)

// replay runs the named scenario against a fresh recorder with all
// delays removed.
func replay(t *testing.T, name string, seed uint64) *actlogtest.Recorder {
	t.Helper()

	rec := actlogtest.New()
	prev := actlog.SetCurrent(rec)
	t.Cleanup(func() { actlog.SetCurrent(prev) })

	s, ok := Lookup(name)
	require.True(t, ok, "scenario %q must exist", name)

	rng := rand.New(rand.NewPCG(seed, seed))
	require.NoError(t, s.Run(context.Background(), &Pace{}, rng))
	return rec
}

// assertBalanced checks that every started activity was stopped.
func assertBalanced(t *testing.T, events []actlogtest.Event) {
	t.Helper()

	live := map[actlog.ActivityID]bool{}
	starts := 0
	for _, ev := range events {
		switch ev.Kind {
		case actlogtest.KindStart:
			live[ev.ID] = true
			starts++
		case actlogtest.KindStop:
			delete(live, ev.ID)
		}
	}
	require.Positive(t, starts, "scenario must start at least one activity")
	require.Empty(t, live, "every started activity must be stopped")
}

func TestAllScenariosAreBalanced(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			rec := replay(t, s.Name, 1)
			assertBalanced(t, rec.Events())
		})
	}
}

func TestAllNamesAreUniqueAndDescribed(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range All() {
		assert.False(t, seen[s.Name], "duplicate scenario name %q", s.Name)
		seen[s.Name] = true
		assert.NotEmpty(t, s.Description, "scenario %q needs a description", s.Name)
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("build")
	require.True(t, ok)
	assert.Equal(t, "build", s.Name)

	_, ok = Lookup("no-such-scenario")
	assert.False(t, ok)
}

func TestBuildEmitsLogLinesPerPackage(t *testing.T) {
	rec := replay(t, "build", 7)

	logLines := 0
	labels := map[string]bool{}
	for _, ev := range rec.Events() {
		switch {
		case ev.Kind == actlogtest.KindResult && ev.Result == actlog.ResultBuildLogLine:
			logLines++
		case ev.Kind == actlogtest.KindStart && ev.Text != "":
			labels[ev.Text] = true
		}
	}

	assert.Equal(t, len(buildTargets)*len(buildSteps), logLines)
	for _, name := range buildTargets {
		assert.True(t, labels["building "+name], "missing per-package activity for %s", name)
	}
	assert.Contains(t, rec.Lines(), "building 5 packages")
}

func TestFetchDeclaresExpectedTotalsUpFront(t *testing.T) {
	rec := replay(t, "fetch", 7)
	events := rec.Events()

	firstExpected := -1
	firstDownload := -1
	var pathTotal, byteTotal uint64
	for i, ev := range events {
		switch ev.Kind {
		case actlogtest.KindExpected:
			if firstExpected == -1 {
				firstExpected = i
			}
			switch ev.Type {
			case actlog.ActivityCopyPaths:
				pathTotal = ev.Expected
			case actlog.ActivityDownload:
				byteTotal = ev.Expected
			}
		case actlogtest.KindStart:
			if ev.Type == actlog.ActivityDownload && firstDownload == -1 {
				firstDownload = i
			}
		}
	}

	assert.Equal(t, uint64(4), pathTotal)
	assert.Greater(t, byteTotal, uint64(10<<20), "download total should cover all path sizes")
	require.NotEqual(t, -1, firstExpected)
	require.NotEqual(t, -1, firstDownload)
	assert.Less(t, firstExpected, firstDownload, "totals must be declared before the first download starts")
}

func TestOptimiseReportsLinkedFiles(t *testing.T) {
	rec := replay(t, "optimise", 7)

	linked := 0
	for _, ev := range rec.Events() {
		if ev.Kind == actlogtest.KindResult && ev.Result == actlog.ResultFileLinked {
			linked++
			require.Len(t, ev.Fields, 1)
			assert.Positive(t, ev.Fields[0].Uint())
		}
	}
	assert.Positive(t, linked)
}

func TestVerifyFlagsFixedPaths(t *testing.T) {
	// The flagged paths are fixed so the failure clauses show up for
	// every seed.
	for _, seed := range []uint64{1, 99} {
		rec := replay(t, "verify", seed)

		corrupted, untrusted := 0, 0
		for _, ev := range rec.Events() {
			if ev.Kind != actlogtest.KindResult {
				continue
			}
			switch ev.Result {
			case actlog.ResultCorruptedPath:
				corrupted++
			case actlog.ResultUntrustedPath:
				untrusted++
			}
		}
		assert.Equal(t, 2, corrupted, "seed %d", seed)
		assert.Equal(t, 1, untrusted, "seed %d", seed)

		warned := false
		for _, line := range rec.Lines() {
			if line == "path 'curl-8.8.0' was modified! expected hash differs" {
				warned = true
			}
		}
		assert.True(t, warned, "corruption must be reported as a log line too")
	}
}

func TestMixedCoversAllWorkloads(t *testing.T) {
	rec := replay(t, "mixed", 7)
	events := rec.Events()
	assertBalanced(t, events)

	sawBuildLog := false
	sawLinked := false
	sawDownload := false
	for _, ev := range events {
		switch {
		case ev.Kind == actlogtest.KindResult && ev.Result == actlog.ResultBuildLogLine:
			sawBuildLog = true
		case ev.Kind == actlogtest.KindResult && ev.Result == actlog.ResultFileLinked:
			sawLinked = true
		case ev.Kind == actlogtest.KindStart && ev.Type == actlog.ActivityDownload:
			sawDownload = true
		}
	}
	assert.True(t, sawBuildLog, "mixed should include build output")
	assert.True(t, sawLinked, "mixed should include optimisation")
	assert.True(t, sawDownload, "mixed should include downloads")
}

func TestCanceledContextStopsEarlyButBalanced(t *testing.T) {
	rec := actlogtest.New()
	prev := actlog.SetCurrent(rec)
	t.Cleanup(func() { actlog.SetCurrent(prev) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			rec.Reset()
			rng := rand.New(rand.NewPCG(1, 1))
			err := s.Run(ctx, &Pace{}, rng)
			require.ErrorIs(t, err, context.Canceled)
			assertBalanced(t, rec.Events())
		})
	}
}

func TestPaceSleep(t *testing.T) {
	ctx := context.Background()

	var nilPace *Pace
	require.NoError(t, nilPace.Sleep(ctx, 3))
	require.NoError(t, (&Pace{}).Sleep(ctx, 3))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	start := time.Now()
	err := (&Pace{Unit: time.Hour}).Sleep(canceled, 1)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "canceled sleep must not block")
}
