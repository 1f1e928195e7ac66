// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel runs embarrassingly parallel tasks.
//
// An EasyParallel pairs one function with a list of per-task
// arguments and offers several ways to run them. Every strategy returns
// the same set of results; they differ only in how many tasks run at
// once and in the order results come back.
//
//	ez, _ := parallel.New(func(ctx context.Context, hour int) (string, error) {
//		return render(ctx, "t2m", hour)
//	}, []int{0, 6, 12, 18}, nil)
//	files, err := ez.Multithread(ctx, 10)
//
// Arguments shared by all tasks are captured by the function's
// closure.
package parallel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// A Func computes the result of one task.
type Func[A, R any] func(ctx context.Context, arg A) (R, error)

// Default concurrency limits.
const (
	DefaultCPUs    = 4
	DefaultThreads = 10
	DefaultWorkers = 4
)

// Strategy names, as reported in Info.Type and metric labels.
const (
	TypeSequential   = "sequential"
	TypeMultiprocess = "multiprocessing"
	TypeMultithread  = "multithreading (method 1)"
	TypeMultithread2 = "multithreading (method 2)"
	TypeTaskGraph    = "task graph"
)

var (
	ErrNoFunc  = errors.New("parallel: nil function")
	ErrNoTasks = errors.New("parallel: no tasks")
	ErrLimit   = errors.New("parallel: concurrency limit must be positive")
)

// Options configures an EasyParallel. The zero value is usable.
type Options struct {
	// Log receives progress events. If nil, nothing is logged.
	Log *zerolog.Logger
	// Clock times runs and tasks. If nil, the real clock is used.
	Clock clockwork.Clock
	// Metrics, if non-nil, records task counts and durations.
	Metrics *Metrics
	// Progress, if non-nil, receives a progress bar.
	Progress io.Writer
}

// Info describes the most recent run.
type Info struct {
	Type    string
	Workers int
	// Timer is the wall time of the whole run.
	Timer time.Duration
	// TaskMean and TaskMax summarize the durations of the tasks that
	// completed.
	TaskMean time.Duration
	TaskMax  time.Duration
}

// EasyParallel runs fn once per element of args.
type EasyParallel[A, R any] struct {
	fn    Func[A, R]
	args  []A
	log   zerolog.Logger
	clock clockwork.Clock
	opts  Options

	mu   sync.Mutex
	info Info
}

// New returns an EasyParallel that calls fn for each of args. opts may
// be nil.
func New[A, R any](fn Func[A, R], args []A, opts *Options) (*EasyParallel[A, R], error) {
	if fn == nil {
		return nil, ErrNoFunc
	}
	if len(args) == 0 {
		return nil, ErrNoTasks
	}
	p := &EasyParallel[A, R]{fn: fn, args: args, log: zerolog.Nop(), clock: clockwork.NewRealClock()}
	if opts != nil {
		p.opts = *opts
		if opts.Log != nil {
			p.log = *opts.Log
		}
		if opts.Clock != nil {
			p.clock = opts.Clock
		}
	}
	return p, nil
}

// Len returns the number of tasks.
func (p *EasyParallel[A, R]) Len() int { return len(p.args) }

// Info returns a description of the most recent completed run.
func (p *EasyParallel[A, R]) Info() Info {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.info
}

func (p *EasyParallel[A, R]) String() string {
	return fmt.Sprintf("EasyParallel(%d tasks, last run %+v)", len(p.args), p.Info())
}

// Sequential runs the tasks one at a time in the calling goroutine and
// returns their results in submission order. It stops at the first
// error.
func (p *EasyParallel[A, R]) Sequential(ctx context.Context) ([]R, error) {
	r := p.begin(TypeSequential, 1)
	out := make([]R, 0, len(p.args))
	for i := range p.args {
		if err := ctx.Err(); err != nil {
			return nil, r.finish(err)
		}
		res, err := r.call(ctx, i)
		if err != nil {
			return nil, r.finish(err)
		}
		out = append(out, res)
		r.completed("completed task")
	}
	return out, r.finish(nil)
}

// Multiprocess runs the tasks on min(maxCPUs, n) workers and returns
// results in submission order. This is the strategy for CPU-bound
// tasks, so maxCPUs should usually not exceed the number of CPUs.
func (p *EasyParallel[A, R]) Multiprocess(ctx context.Context, maxCPUs int) ([]R, error) {
	if maxCPUs <= 0 {
		return nil, fmt.Errorf("%w: max CPUs %d", ErrLimit, maxCPUs)
	}
	return p.pool(ctx, TypeMultiprocess, min(maxCPUs, len(p.args)), true)
}

// Multithread runs the tasks on up to maxThreads workers and returns
// results in the order the tasks complete, not the order they were
// submitted.
func (p *EasyParallel[A, R]) Multithread(ctx context.Context, maxThreads int) ([]R, error) {
	if maxThreads <= 0 {
		return nil, fmt.Errorf("%w: max threads %d", ErrLimit, maxThreads)
	}
	return p.pool(ctx, TypeMultithread, min(maxThreads, len(p.args)), false)
}

// Multithread2 is like Multithread, but returns results in submission
// order.
func (p *EasyParallel[A, R]) Multithread2(ctx context.Context, maxThreads int) ([]R, error) {
	if maxThreads <= 0 {
		return nil, fmt.Errorf("%w: max threads %d", ErrLimit, maxThreads)
	}
	return p.pool(ctx, TypeMultithread2, min(maxThreads, len(p.args)), true)
}

// TaskGraph runs the tasks as an errgroup limited to maxWorkers
// concurrent tasks. Results are in submission order. The first error
// cancels the context passed to every other task and no further tasks
// are started.
func (p *EasyParallel[A, R]) TaskGraph(ctx context.Context, maxWorkers int) ([]R, error) {
	if maxWorkers <= 0 {
		return nil, fmt.Errorf("%w: max workers %d", ErrLimit, maxWorkers)
	}
	workers := min(maxWorkers, len(p.args))
	r := p.begin(TypeTaskGraph, workers)
	out := make([]R, len(p.args))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range p.args {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			res, err := r.call(gctx, i)
			if err != nil {
				return err
			}
			out[i] = res
			r.completed("completed task")
			return nil
		})
	}
	err := g.Wait()
	if err == nil && r.count() < len(p.args) {
		err = ctx.Err()
	}
	if err != nil {
		return nil, r.finish(err)
	}
	return out, r.finish(nil)
}

type outcome[R any] struct {
	i   int
	res R
	err error
}

// pool runs the tasks on a fixed set of workers. After the first
// error no more tasks are handed out, but tasks already running are
// allowed to finish.
func (p *EasyParallel[A, R]) pool(ctx context.Context, typ string, workers int, ordered bool) ([]R, error) {
	r := p.begin(typ, workers)
	msg := "completed task"
	if !ordered {
		msg = "Finished"
	}

	stop, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	done := make(chan outcome[R], workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := r.call(ctx, i)
				done <- outcome[R]{i, res, err}
			}
		}()
	}
	go func() {
		defer close(jobs)
		for i := range p.args {
			if stop.Err() != nil {
				return
			}
			select {
			case jobs <- i:
			case <-stop.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(done)
	}()

	var out []R
	if ordered {
		out = make([]R, len(p.args))
	} else {
		out = make([]R, 0, len(p.args))
	}
	var firstErr error
	for o := range done {
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
				cancel()
			}
			continue
		}
		if ordered {
			out[o.i] = o.res
		} else {
			out = append(out, o.res)
		}
		r.completed(msg)
	}
	if firstErr == nil && r.count() < len(p.args) {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, r.finish(firstErr)
	}
	return out, r.finish(nil)
}
