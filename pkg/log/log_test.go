package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Cleanup(SetupTestLogger)

	t.Run("production uses JSON and the given level", func(t *testing.T) {
		require.NoError(t, Setup("production", "warn"))

		assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
		assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
		assert.False(t, IsDevelopment())
	})

	t.Run("development uses text", func(t *testing.T) {
		require.NoError(t, Setup("development", "debug"))

		assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
		assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
		assert.True(t, IsDevelopment())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		assert.Error(t, Setup("staging", "loud"))
		assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	})
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Cleanup(SetupTestLogger)
	hook := test.NewGlobal()
	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

	require.NoError(t, Setup("development", "debug"))
	L.WithFields(Fields{"route": "/api/dashboard", "payload": "large", "user_id": "u1"}).Info("kept")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "/api/dashboard", entry.Data["route"])
	assert.Equal(t, "u1", entry.Data["user_id"])
	assert.NotContains(t, entry.Data, "payload")

	require.NoError(t, Setup("production", "debug"))
	L.WithField("payload", "large").Info("all fields")

	assert.Equal(t, "large", hook.LastEntry().Data["payload"])
}

func TestForContext(t *testing.T) {
	SetupTestLogger()
	hook := test.NewGlobal()

	ctx, correlationID := WithCorrelationID(context.Background())
	require.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	ForContext(ctx).Info("request")

	assert.Equal(t, correlationID, hook.LastEntry().Data[correlationIDField])
}
