package actlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/pawgress/pkg/actlog"
	"github.com/schmitthub/pawgress/pkg/actlog/actlogtest"
)

func TestSetCurrentReturnsPrevious(t *testing.T) {
	rec := actlogtest.New()
	prev := actlog.SetCurrent(rec)
	defer actlog.SetCurrent(prev)

	require.Same(t, rec, actlog.Current())

	again := actlog.SetCurrent(prev)
	require.Same(t, rec, again)
	actlog.SetCurrent(rec)
}

func TestLogfRespectsVerbosityThreshold(t *testing.T) {
	rec := actlogtest.New()
	prev := actlog.SetCurrent(rec)
	defer actlog.SetCurrent(prev)

	prevV := actlog.GetVerbosity()
	defer actlog.SetVerbosity(prevV)

	actlog.SetVerbosity(actlog.VerbosityWarn)

	actlog.Errorf("boom %d", 1)
	actlog.Warnf("careful")
	actlog.Infof("dropped")
	actlog.Debugf("dropped too")

	require.Equal(t, []string{"boom 1", "careful"}, rec.Lines())
}

func TestLogfAtTraceThresholdPassesEverything(t *testing.T) {
	rec := actlogtest.New()
	prev := actlog.SetCurrent(rec)
	defer actlog.SetCurrent(prev)

	prevV := actlog.GetVerbosity()
	defer actlog.SetVerbosity(prevV)

	actlog.SetVerbosity(actlog.VerbosityTrace)

	actlog.Logf(actlog.VerbosityTrace, "fine detail")
	actlog.Debugf("detail")

	require.Equal(t, []string{"fine detail", "detail"}, rec.Lines())
}

func TestVerbosityString(t *testing.T) {
	assert.Equal(t, "error", actlog.VerbosityError.String())
	assert.Equal(t, "warn", actlog.VerbosityWarn.String())
	assert.Equal(t, "info", actlog.VerbosityInfo.String())
	assert.Equal(t, "debug", actlog.VerbosityDebug.String())
	assert.Equal(t, "trace", actlog.VerbosityTrace.String())
	assert.Equal(t, "verbosity(42)", actlog.Verbosity(42).String())
}
