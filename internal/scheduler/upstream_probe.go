package scheduler

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/pointnowclient"
	"github.com/pointnow/admin-bff/internal/config"
	"github.com/sirupsen/logrus"
)

const probeTimeout = 10 * time.Second

// UpstreamStatus is the outcome of the last probe
type UpstreamStatus struct {
	Reachable  bool       `json:"reachable"`
	StatusCode int        `json:"status_code,omitempty"`
	CheckedAt  *time.Time `json:"checked_at"`
	Error      string     `json:"error,omitempty"`
}

type UpstreamProbeConfig struct {
	CronSchedule string
	Enabled      bool
}

// UpstreamProbeService periodically checks that the upstream API answers at all.
// Any HTTP response counts as reachable; only transport failures do not.
type UpstreamProbeService struct {
	scheduler *gocron.Scheduler
	config    UpstreamProbeConfig
	client    pointnowclient.Client
	now       func() time.Time

	mu      sync.RWMutex
	running bool
	status  UpstreamStatus
}

func NewUpstreamProbeService(client pointnowclient.Client, appConfig *config.Config) *UpstreamProbeService {
	probeConfig := UpstreamProbeConfig{
		CronSchedule: appConfig.UpstreamProbe.CronSchedule,
		Enabled:      appConfig.UpstreamProbe.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
		"enabled":       probeConfig.Enabled,
	}).Info("upstream probe configuration loaded")

	return &UpstreamProbeService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    probeConfig,
		client:    client,
		now:       time.Now,
	}
}

func (s *UpstreamProbeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("upstream probe disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Probe(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule upstream probe: %w", err)
	}

	s.scheduler.StartAsync()
	go s.Probe(ctx)

	go func() {
		<-ctx.Done()
		logrus.Info("stopping upstream probe")
		s.scheduler.Stop()
	}()

	return nil
}

// Probe issues one unauthenticated GET to the upstream base URL. Overlapping runs are skipped.
func (s *UpstreamProbeService) Probe(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	resp, err := s.client.Do(probeCtx, pointnowclient.Request{Method: http.MethodGet})
	checkedAt := s.now()

	status := UpstreamStatus{CheckedAt: &checkedAt}
	if err != nil {
		status.Error = err.Error()
		logrus.WithError(err).Warn("upstream probe: upstream unreachable")
	} else {
		status.Reachable = true
		status.StatusCode = resp.StatusCode
		logrus.WithField("status_code", resp.StatusCode).Debug("upstream probe: upstream reachable")
	}

	s.mu.Lock()
	s.status = status
	s.running = false
	s.mu.Unlock()
}

// Status returns the last probe outcome; CheckedAt is nil before the first run
func (s *UpstreamProbeService) Status() UpstreamStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
