// Package jobs runs periodic background work: balance reconciliation and the
// notification digest.
package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Job is a named piece of work that runs every Interval.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs jobs on tickers.
type Scheduler struct {
	jobs []Job
}

// NewScheduler returns a Scheduler for the jobs. Jobs without a positive
// interval are disabled.
func NewScheduler(jobs ...Job) *Scheduler {
	s := &Scheduler{}
	for _, job := range jobs {
		if job.Interval <= 0 || job.Run == nil {
			log.Info().Str("job", job.Name).Msg("Job disabled")
			continue
		}
		s.jobs = append(s.jobs, job)
	}

	return s
}

// Jobs returns the names of the enabled jobs.
func (s *Scheduler) Jobs() []string {
	names := make([]string, 0, len(s.jobs))
	for _, job := range s.jobs {
		names = append(names, job.Name)
	}
	return names
}

// Run starts all jobs and blocks until ctx is cancelled and every running
// job has returned.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			loop(ctx, job)
		}(job)
	}

	wg.Wait()
}

func loop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	log.Debug().Str("job", job.Name).Dur("interval", job.Interval).Msg("Job started")

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("job", job.Name).Msg("Job stopped")
			return
		case <-ticker.C:
			start := time.Now()
			if err := job.Run(ctx); err != nil {
				log.Error().Err(err).Str("job", job.Name).Msg("Job failed")
				continue
			}
			log.Debug().Str("job", job.Name).Dur("duration", time.Since(start)).Msg("Job finished")
		}
	}
}
