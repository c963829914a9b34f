package scheduler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/mocks"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/pointnowclient"
	"github.com/pointnow/admin-bff/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProbe(t *testing.T, enabled bool) (*UpstreamProbeService, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{UpstreamProbe: config.UpstreamProbe{CronSchedule: "* * * * *", Enabled: enabled}}
	probe := NewUpstreamProbeService(client, cfg)
	probe.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	return probe, client
}

func TestUpstreamProbeService_Probe(t *testing.T) {
	t.Run("before the first run", func(t *testing.T) {
		probe, _ := newTestProbe(t, true)

		status := probe.Status()
		assert.False(t, status.Reachable)
		assert.Nil(t, status.CheckedAt)
	})

	t.Run("any http answer is reachable", func(t *testing.T) {
		probe, client := newTestProbe(t, true)

		client.EXPECT().
			Do(gomock.Any(), pointnowclient.Request{Method: http.MethodGet}).
			Return(&pointnowclient.Response{StatusCode: http.StatusNotFound}, nil)

		probe.Probe(context.Background())

		status := probe.Status()
		assert.True(t, status.Reachable)
		assert.Equal(t, http.StatusNotFound, status.StatusCode)
		require.NotNil(t, status.CheckedAt)
		assert.Equal(t, 2024, status.CheckedAt.Year())
		assert.Empty(t, status.Error)
	})

	t.Run("transport failure", func(t *testing.T) {
		probe, client := newTestProbe(t, true)

		client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))

		probe.Probe(context.Background())

		status := probe.Status()
		assert.False(t, status.Reachable)
		assert.Equal(t, "dial tcp: connection refused", status.Error)
		assert.NotNil(t, status.CheckedAt)
	})
}

func TestUpstreamProbeService_StartDisabled(t *testing.T) {
	probe, _ := newTestProbe(t, false)

	require.NoError(t, probe.Start(context.Background()))
	assert.Nil(t, probe.Status().CheckedAt)
}

func TestUpstreamProbeService_StartInvalidCron(t *testing.T) {
	probe, _ := newTestProbe(t, true)
	probe.config.CronSchedule = "not a cron"

	assert.Error(t, probe.Start(context.Background()))
}
