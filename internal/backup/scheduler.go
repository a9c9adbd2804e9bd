// Package backup snapshots the state document to one or more blob targets
// on a cron schedule.
package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"teknikservis/backend/internal/blob"
	"teknikservis/backend/internal/service"
)

type Scheduler struct {
	cron    *cron.Cron
	svc     *service.Service
	targets []blob.Target
	log     *zap.Logger
	spec    string
}

func NewScheduler(svc *service.Service, targets []blob.Target, spec string, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		svc:     svc,
		targets: targets,
		log:     log,
		spec:    spec,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runOnce); err != nil {
		return fmt.Errorf("schedule backup: %w", err)
	}
	s.cron.Start()
	s.log.Info("backup scheduler started", zap.String("spec", s.spec), zap.Int("targets", len(s.targets)))
	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, err := s.svc.ExportBackup()
	if err != nil {
		s.log.Error("export backup snapshot", zap.Error(err))
		return
	}
	key := fmt.Sprintf("state-%s.json", time.Now().UTC().Format("20060102-150405"))
	for _, t := range s.targets {
		if err := t.Put(ctx, key, data, "application/json"); err != nil {
			s.log.Error("write backup snapshot", zap.String("key", key), zap.Error(err))
			continue
		}
		s.log.Info("backup snapshot written", zap.String("key", key), zap.Int("bytes", len(data)))
	}
}
