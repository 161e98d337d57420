package dailyreport

import (
	"context"
	"fmt"
	"time"

	"github.com/Vaishnavi639/DailyDashboard/internal/dependency"
	"github.com/Vaishnavi639/DailyDashboard/internal/report"
)

// Config holds configuration for the daily report worker.
type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 24 * time.Hour,
	}
}

// Worker periodically emails every business account its report for the
// previous reporting-zone calendar day.
type Worker struct {
	svc    *report.Service
	mailer dependency.Mailer
	c      *Config
	ctx    context.Context
	stop   context.CancelFunc
}

// New creates a new daily report worker.
func New(c *Config, svc *report.Service, mailer dependency.Mailer) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = 24 * time.Hour
	}
	return &Worker{
		svc:    svc,
		mailer: mailer,
		c:      c,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("daily report worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("daily report worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}
