package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("honours level", func(t *testing.T) {
		l, err := New("warn")
		require.NoError(t, err)
		defer func() { _ = l.Sync() }()

		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := New("loud")
		assert.Error(t, err)
	})
}

func TestMust(t *testing.T) {
	assert.Panics(t, func() { Must(nil, errors.New("boom")) })

	l := zap.NewNop()
	assert.Same(t, l, Must(l, nil))
}

func TestNamed(t *testing.T) {
	assert.NotNil(t, Named(nil, "console"))
	assert.NotNil(t, Named(zap.NewNop(), "console"))
}
