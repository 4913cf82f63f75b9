package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/epmbands/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		got, err := logging.ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := logging.ParseLevel("chatty")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	for _, json := range []bool{false, true} {
		l, err := logging.New("debug", json)
		require.NoError(t, err)
		require.True(t, l.Core().Enabled(zapcore.DebugLevel))
	}

	l, err := logging.New("warn", true)
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = logging.New("nope", false)
	require.Error(t, err)
}
