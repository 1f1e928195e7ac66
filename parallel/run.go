// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/cheggaaa/pb"
	"github.com/rs/zerolog"
)

// A run tracks one invocation of a strategy.
type run[A, R any] struct {
	p       *EasyParallel[A, R]
	typ     string
	workers int
	start   time.Time
	log     zerolog.Logger
	bar     *pb.ProgressBar

	mu        sync.Mutex
	done      int
	durations []float64 // seconds
}

func (p *EasyParallel[A, R]) begin(typ string, workers int) *run[A, R] {
	r := &run[A, R]{
		p:       p,
		typ:     typ,
		workers: workers,
		start:   p.clock.Now(),
		log:     p.log.With().Str("type", typ).Int("workers", workers).Logger(),
	}
	r.log.Info().Int("tasks", len(p.args)).Msg("starting")
	if p.opts.Progress != nil {
		r.bar = pb.New(len(p.args))
		r.bar.Output = p.opts.Progress
		r.bar.ShowPercent = true
		r.bar.ShowBar = true
		r.bar.ShowCounters = true
		r.bar.ShowTimeLeft = true
		r.bar.Start()
	}
	if m := p.opts.Metrics; m != nil {
		m.Workers.WithLabelValues(typ).Set(float64(workers))
	}
	return r
}

// call runs task i.
func (r *run[A, R]) call(ctx context.Context, i int) (R, error) {
	t0 := r.p.clock.Now()
	res, err := r.p.fn(ctx, r.p.args[i])
	d := r.p.clock.Since(t0)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		err = fmt.Errorf("parallel: task %d/%d: %w", i+1, len(r.p.args), err)
	} else {
		r.mu.Lock()
		r.durations = append(r.durations, d.Seconds())
		r.mu.Unlock()
	}
	if m := r.p.opts.Metrics; m != nil {
		m.Tasks.WithLabelValues(r.typ, outcome).Inc()
		m.TaskDuration.WithLabelValues(r.typ).Observe(d.Seconds())
	}
	return res, err
}

// completed records that one more task finished successfully.
func (r *run[A, R]) completed(msg string) {
	r.mu.Lock()
	r.done++
	n := r.done
	r.mu.Unlock()
	if r.bar != nil {
		r.bar.Increment()
	}
	r.log.Debug().Msgf("%s [%d/%d]", msg, n, len(r.p.args))
}

func (r *run[A, R]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// finish records the run's Info and returns err.
func (r *run[A, R]) finish(err error) error {
	info := Info{
		Type:    r.typ,
		Workers: r.workers,
		Timer:   r.p.clock.Since(r.start),
	}
	r.mu.Lock()
	if len(r.durations) > 0 {
		info.TaskMean = seconds(stats.Mean(r.durations))
		_, hi := stats.Bounds(r.durations)
		info.TaskMax = seconds(hi)
	}
	n := r.done
	r.mu.Unlock()

	if r.bar != nil {
		r.bar.Finish()
	}
	if m := r.p.opts.Metrics; m != nil {
		result := "ok"
		if err != nil {
			result = "error"
		}
		m.Runs.WithLabelValues(r.typ, result).Inc()
	}

	ev := r.log.Info()
	if err != nil {
		ev = r.log.Error().Err(err)
	}
	ev.Int("completed", n).Dur("timer", info.Timer).Msg("finished")

	r.p.mu.Lock()
	r.p.info = info
	r.p.mu.Unlock()
	return err
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
