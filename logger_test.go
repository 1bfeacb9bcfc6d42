package vumesh

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		require.False(t, l.Enabled(context.Background(), level))
	}
	_, ok := l.Handler().WithGroup("g").WithAttrs(nil).(nopHandler)
	require.True(t, ok)
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	g := NewGraph()
	mustLoop(t, g, pts(0, 0, 3, 0, 3, 3, 2, 3, 2, 1, 1, 1, 1, 3, 0, 3))
	require.Equal(t, 1, g.TriangulateMonotoneInteriorFaces())
	require.Contains(t, buf.String(), "level=WARN msg=\"face could not be triangulated\"")
	require.Contains(t, buf.String(), "failed=1")

	SetLogger(nil)
	require.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
