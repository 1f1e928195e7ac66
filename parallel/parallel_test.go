// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func square(ctx context.Context, x int) (int, error) {
	return x * x, nil
}

func TestNew(t *testing.T) {
	_, err := New[int, int](nil, []int{1}, nil)
	assert.ErrorIs(t, err, ErrNoFunc)
	_, err = New(square, nil, nil)
	assert.ErrorIs(t, err, ErrNoTasks)

	p, err := New(square, []int{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
}

func TestStrategiesAgree(t *testing.T) {
	ctx := context.Background()
	args := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	want := []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100, 121, 144}
	p, err := New(square, args, nil)
	require.NoError(t, err)

	got, err := p.Sequential(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, TypeSequential, p.Info().Type)
	assert.Equal(t, 1, p.Info().Workers)

	got, err = p.Multiprocess(ctx, DefaultCPUs)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, TypeMultiprocess, p.Info().Type)
	assert.Equal(t, 4, p.Info().Workers)

	got, err = p.Multithread(ctx, DefaultThreads)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
	assert.Equal(t, TypeMultithread, p.Info().Type)
	assert.Equal(t, 10, p.Info().Workers)

	got, err = p.Multithread2(ctx, DefaultThreads)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = p.TaskGraph(ctx, DefaultWorkers)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, TypeTaskGraph, p.Info().Type)
}

func TestWorkersCappedByTasks(t *testing.T) {
	p, err := New(square, []int{1, 2, 3}, nil)
	require.NoError(t, err)
	_, err = p.Multithread2(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Info().Workers)
}

func TestLimits(t *testing.T) {
	ctx := context.Background()
	p, err := New(square, []int{1}, nil)
	require.NoError(t, err)
	_, err = p.Multiprocess(ctx, 0)
	assert.ErrorIs(t, err, ErrLimit)
	_, err = p.Multithread(ctx, -1)
	assert.ErrorIs(t, err, ErrLimit)
	_, err = p.Multithread2(ctx, 0)
	assert.ErrorIs(t, err, ErrLimit)
	_, err = p.TaskGraph(ctx, 0)
	assert.ErrorIs(t, err, ErrLimit)
}

// signalWriter closes ch the first time a log line contains match.
type signalWriter struct {
	match string
	ch    chan struct{}
	once  sync.Once
}

func (w *signalWriter) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte(w.match)) {
		w.once.Do(func() { close(w.ch) })
	}
	return len(p), nil
}

func TestMultithreadCompletionOrder(t *testing.T) {
	// Task "slow" cannot finish until "fast" has been collected.
	w := &signalWriter{match: "Finished [1/2]", ch: make(chan struct{})}
	log := zerolog.New(w).Level(zerolog.DebugLevel)
	p, err := New(func(ctx context.Context, s string) (string, error) {
		if s == "slow" {
			<-w.ch
		}
		return s, nil
	}, []string{"slow", "fast"}, &Options{Log: &log})
	require.NoError(t, err)

	got, err := p.Multithread(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"fast", "slow"}, got)

	// The ordered variant restores submission order.
	w.match = "completed task [1/2]"
	w.ch = make(chan struct{})
	w.once = sync.Once{}
	got, err = p.Multithread2(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"slow", "fast"}, got)
}

func TestErrors(t *testing.T) {
	ctx := context.Background()
	p, err := New(func(ctx context.Context, x int) (int, error) {
		if x == 3 {
			return 0, errBoom
		}
		return x, nil
	}, []int{1, 2, 3, 4, 5}, nil)
	require.NoError(t, err)

	for name, fn := range map[string]func() ([]int, error){
		"sequential":   func() ([]int, error) { return p.Sequential(ctx) },
		"multiprocess": func() ([]int, error) { return p.Multiprocess(ctx, 2) },
		"multithread":  func() ([]int, error) { return p.Multithread(ctx, 2) },
		"multithread2": func() ([]int, error) { return p.Multithread2(ctx, 2) },
		"taskgraph":    func() ([]int, error) { return p.TaskGraph(ctx, 2) },
	} {
		t.Run(name, func(t *testing.T) {
			got, err := fn()
			assert.Nil(t, got)
			assert.ErrorIs(t, err, errBoom)
			assert.Contains(t, err.Error(), "task 3/5")
		})
	}
}

func TestTaskGraphFailFast(t *testing.T) {
	var started atomic.Int32
	p, err := New(func(ctx context.Context, x int) (int, error) {
		started.Add(1)
		if x == 0 {
			return 0, errBoom
		}
		<-ctx.Done()
		return 0, ctx.Err()
	}, []int{0, 1, 2, 3, 4, 5, 6, 7}, nil)
	require.NoError(t, err)

	_, err = p.TaskGraph(context.Background(), 2)
	assert.ErrorIs(t, err, errBoom)
	assert.LessOrEqual(t, started.Load(), int32(3))
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, err := New(func(ctx context.Context, x int) (int, error) {
		return x, ctx.Err()
	}, []int{1, 2, 3}, nil)
	require.NoError(t, err)

	_, err = p.Sequential(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = p.Multithread(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = p.TaskGraph(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCanceledRunsNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls atomic.Int32
	p, err := New(func(ctx context.Context, x int) (int, error) {
		calls.Add(1)
		return x, nil
	}, []int{1, 2, 3, 4, 5, 6, 7, 8}, nil)
	require.NoError(t, err)

	for name, run := range map[string]func() ([]int, error){
		TypeSequential:   func() ([]int, error) { return p.Sequential(ctx) },
		TypeMultiprocess: func() ([]int, error) { return p.Multiprocess(ctx, 4) },
		TypeMultithread:  func() ([]int, error) { return p.Multithread(ctx, 4) },
		TypeMultithread2: func() ([]int, error) { return p.Multithread2(ctx, 4) },
		TypeTaskGraph:    func() ([]int, error) { return p.TaskGraph(ctx, 4) },
	} {
		got, err := run()
		assert.ErrorIs(t, err, context.Canceled, name)
		assert.Nil(t, got, name)
		assert.Zero(t, calls.Load(), name)
	}
}

// lockedBuffer is a bytes.Buffer safe for the progress bar's refresh
// goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestProgress(t *testing.T) {
	var out lockedBuffer
	p, err := New(square, []int{1, 2, 3}, &Options{Progress: &out})
	require.NoError(t, err)

	got, err := p.Multithread2(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9}, got)
	bar := out.String()
	assert.NotEmpty(t, bar)
	assert.Contains(t, bar, "3 / 3")
}

func TestInfoTimer(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p, err := New(func(ctx context.Context, x int) (int, error) {
		clock.Advance(time.Duration(x) * time.Second)
		return x, nil
	}, []int{1, 2, 3}, &Options{Clock: clock})
	require.NoError(t, err)

	_, err = p.Sequential(context.Background())
	require.NoError(t, err)
	info := p.Info()
	assert.Equal(t, 6*time.Second, info.Timer)
	assert.Equal(t, 2*time.Second, info.TaskMean)
	assert.Equal(t, 3*time.Second, info.TaskMax)
	assert.Contains(t, p.String(), "3 tasks")
}

func TestMetrics(t *testing.T) {
	m := NewMetricsForTesting()
	p, err := New(func(ctx context.Context, x int) (int, error) {
		if x < 0 {
			return 0, errBoom
		}
		return x, nil
	}, []int{1, 2, 3}, &Options{Metrics: m})
	require.NoError(t, err)

	_, err = p.Multithread2(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Tasks.WithLabelValues(TypeMultithread2, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(TypeMultithread2, "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Workers.WithLabelValues(TypeMultithread2)))

	q, err := New(p.fn, []int{-1}, &Options{Metrics: m})
	require.NoError(t, err)
	_, err = q.Sequential(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Tasks.WithLabelValues(TypeSequential, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(TypeSequential, "error")))
}

func TestShellTasks(t *testing.T) {
	in := `# render all hours
plot -h 0 'T 2m'

plot -h "6" --title="a b"
`
	tasks, err := ShellTasks(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"plot", "-h", "0", "T 2m"},
		{"plot", "-h", "6", "--title=a b"},
	}, tasks)

	_, err = ShellTasks(strings.NewReader("plot 'unterminated\n"))
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	out, err := RunCommand(context.Background(), []string{"sh", "-c", "echo hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))

	_, err = RunCommand(context.Background(), []string{"sh", "-c", "echo oops; exit 3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oops")

	_, err = RunCommand(context.Background(), nil)
	assert.Error(t, err)
}

func TestTail(t *testing.T) {
	assert.Equal(t, "c\nd", string(tail([]byte("a\nb\nc\nd\n"), 2)))
	assert.Equal(t, "a\nb", string(tail([]byte("a\nb"), 5)))
	assert.Equal(t, "", string(tail(nil, 3)))
}
