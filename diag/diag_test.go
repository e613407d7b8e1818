package diag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rsamg/diag"
)

func TestOrNopReturnsNopForNil(t *testing.T) {
	l := diag.OrNop(nil)
	require.NotPanics(t, func() { l.Warnf("test %d", 1) })
}

type recordingLogger struct{ last string }

func (r *recordingLogger) Warnf(format string, args ...any) { r.last = format }

func TestOrNopPassesThroughNonNil(t *testing.T) {
	rec := &recordingLogger{}
	l := diag.OrNop(rec)
	l.Warnf("hello")
	require.Equal(t, "hello", rec.last)
}

func TestNopDiscardsMessages(t *testing.T) {
	require.NotPanics(t, func() { diag.Nop.Warnf("anything %v", 42) })
}

func TestStdLoggerImplementsLogger(t *testing.T) {
	var l diag.Logger = diag.StdLogger{Prefix: "test"}
	require.NotPanics(t, func() { l.Warnf("message %d", 1) })
}
