package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestObservedLogger(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.InfoLevel)

	lggr.Named("probe").Infow("classified", "tag", "NaN")
	lggr.Debugw("dropped below level")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "classified", entries[0].Message)
	assert.Equal(t, "probe", entries[0].LoggerName)
	assert.Equal(t, "NaN", entries[0].ContextMap()["tag"])
}

func TestNop(t *testing.T) {
	t.Parallel()

	lggr := Nop()
	lggr.Errorw("nothing happens")
	assert.NoError(t, lggr.Sync())
}

func TestNew(t *testing.T) {
	t.Parallel()

	lggr, err := New(zapcore.WarnLevel, false)
	require.NoError(t, err)
	assert.NotNil(t, lggr)
}
