package actlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/pawgress/pkg/actlog"
)

func TestFieldAccessors(t *testing.T) {
	assert.Equal(t, "hello", actlog.StringField("hello").Str())
	assert.Equal(t, uint64(42), actlog.UintField(42).Uint())
}

func TestFieldAccessorMismatchPanics(t *testing.T) {
	require.PanicsWithValue(t, "actlog: field holds string, not uint", func() {
		actlog.StringField("x").Uint()
	})
	require.PanicsWithValue(t, "actlog: field holds uint, not string", func() {
		actlog.UintField(1).Str()
	})
}

func TestZeroFieldPanics(t *testing.T) {
	var f actlog.Field
	require.PanicsWithValue(t, "actlog: field holds empty, not string", func() { f.Str() })
	require.PanicsWithValue(t, "actlog: field holds empty, not uint", func() { f.Uint() })
}

func TestResultTypeString(t *testing.T) {
	assert.Equal(t, "file-linked", actlog.ResultFileLinked.String())
	assert.Equal(t, "build-log-line", actlog.ResultBuildLogLine.String())
	assert.Equal(t, "untrusted-path", actlog.ResultUntrustedPath.String())
	assert.Equal(t, "corrupted-path", actlog.ResultCorruptedPath.String())
	assert.Equal(t, "set-phase", actlog.ResultSetPhase.String())
	assert.Equal(t, "result(7)", actlog.ResultType(7).String())
}
