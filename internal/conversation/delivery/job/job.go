// Package job schedules conversation retention pruning.
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"agentforge/internal/conversation"
	"agentforge/pkg/log"
)

const (
	DefaultSchedule  = "@every 1h"
	DefaultRetention = 30 * 24 * time.Hour
)

// Pruner periodically deletes conversation turns older than the retention window.
type Pruner struct {
	uc        conversation.UseCase
	l         log.Logger
	cron      *cron.Cron
	retention time.Duration
	now       func() time.Time
}

// New registers the prune job on schedule (standard 5-field cron or @every).
func New(uc conversation.UseCase, schedule string, retention time.Duration, l log.Logger) (*Pruner, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if retention <= 0 {
		retention = DefaultRetention
	}

	p := &Pruner{
		uc:        uc,
		l:         log.OrNop(l),
		cron:      cron.New(),
		retention: retention,
		now:       time.Now,
	}
	if _, err := p.cron.AddFunc(schedule, func() { p.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("conversation.job.New: schedule %q: %w", schedule, err)
	}
	return p, nil
}

// Start runs the scheduler until ctx is cancelled.
func (p *Pruner) Start(ctx context.Context) {
	p.cron.Start()
	go func() {
		<-ctx.Done()
		p.Stop()
	}()
}

// Stop halts scheduling and waits for a running prune to finish.
func (p *Pruner) Stop() {
	<-p.cron.Stop().Done()
}

// RunOnce prunes immediately and returns the number of deleted turns.
func (p *Pruner) RunOnce(ctx context.Context) int64 {
	n, err := p.uc.Prune(ctx, p.now().Add(-p.retention))
	if err != nil {
		p.l.Errorf(ctx, "conversation.job.RunOnce: %v", err)
		return 0
	}
	return n
}
