package orchestration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/agbru/statline/internal/config"
	apperrors "github.com/agbru/statline/internal/errors"
	"github.com/agbru/statline/internal/render"
	"github.com/agbru/statline/internal/sampler"
	"github.com/agbru/statline/internal/sysmon"
	"github.com/agbru/statline/internal/sysmon/mocks"
)

// staticRenderer returns text after an optional delay.
func staticRenderer(text string, delay time.Duration) render.Func {
	return func(ctx context.Context, env render.Env) (string, error) {
		time.Sleep(delay)
		return text, nil
	}
}

// TestExecuteTasks_PreservesRequestOrder verifies that fragment order does
// not depend on completion order.
func TestExecuteTasks_PreservesRequestOrder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		delays []time.Duration
	}{
		{"all instant", []time.Duration{0, 0, 0}},
		{"first is slowest", []time.Duration{30 * time.Millisecond, 10 * time.Millisecond, 0}},
		{"last is slowest", []time.Duration{0, 10 * time.Millisecond, 30 * time.Millisecond}},
		{"middle is slowest", []time.Duration{0, 30 * time.Millisecond, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tasks := make([]Task, len(tt.delays))
			for i, d := range tt.delays {
				tasks[i] = Task{Metric: config.MetricMemory, Render: staticRenderer(fmt.Sprintf("f%d", i), d)}
			}

			fragments, err := ExecuteTasks(context.Background(), tasks, render.Env{})
			if err != nil {
				t.Fatalf("ExecuteTasks() error = %v", err)
			}
			if got := Join(fragments); got != "f0 f1 f2" {
				t.Errorf("Join() = %q, want %q", got, "f0 f1 f2")
			}
			for i, f := range fragments {
				if f.Index != i {
					t.Errorf("fragment %d has Index %d", i, f.Index)
				}
			}
		})
	}
}

// TestExecuteTasks_RunsConcurrently verifies that waits do not add up.
func TestExecuteTasks_RunsConcurrently(t *testing.T) {
	t.Parallel()
	const n = 3
	var started sync.WaitGroup
	started.Add(n)
	barrier := func(ctx context.Context, env render.Env) (string, error) {
		started.Done()
		// Only returns once every renderer is running at the same time.
		started.Wait()
		return "ok", nil
	}
	tasks := []Task{{Render: barrier}, {Render: barrier}, {Render: barrier}}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := ExecuteTasks(context.Background(), tasks, render.Env{}); err != nil {
			t.Errorf("ExecuteTasks() error = %v", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("renderers did not run concurrently")
	}
}

// TestExecuteTasks_EnvIsCopiedPerTask verifies that a renderer mutating its
// configuration cannot affect its siblings.
func TestExecuteTasks_EnvIsCopiedPerTask(t *testing.T) {
	t.Parallel()
	mutate := func(ctx context.Context, env render.Env) (string, error) {
		env.Config.ShowIcons = !env.Config.ShowIcons
		return fmt.Sprint(env.Config.ShowIcons), nil
	}
	tasks := []Task{{Render: mutate}, {Render: mutate}, {Render: mutate}}

	fragments, err := ExecuteTasks(context.Background(), tasks, render.Env{Config: config.Default()})
	if err != nil {
		t.Fatalf("ExecuteTasks() error = %v", err)
	}
	if got := Join(fragments); got != "true true true" {
		t.Errorf("Join() = %q, want every task to see the original config", got)
	}
}

// TestExecuteTasks_Failure verifies that any failure aborts the line and that
// every renderer still runs to completion.
func TestExecuteTasks_Failure(t *testing.T) {
	t.Parallel()
	boom := errors.New("no cores")
	var completed atomic.Int32
	ok := func(ctx context.Context, env render.Env) (string, error) {
		time.Sleep(10 * time.Millisecond)
		completed.Add(1)
		return "fine", nil
	}
	fail := func(ctx context.Context, env render.Env) (string, error) {
		return "", boom
	}
	tasks := []Task{
		{Metric: config.MetricNetwork, Render: ok},
		{Metric: config.MetricCPU, Render: fail},
		{Metric: config.MetricMemory, Render: ok},
	}

	fragments, err := ExecuteTasks(context.Background(), tasks, render.Env{})
	if fragments != nil {
		t.Errorf("no fragments should be returned on failure, got %v", fragments)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected cause in chain, got %v", err)
	}
	var renderErr apperrors.RenderError
	if !errors.As(err, &renderErr) || renderErr.Metric != "cpu" {
		t.Errorf("expected RenderError for cpu, got %v", err)
	}
	if completed.Load() != 2 {
		t.Errorf("expected both healthy renderers to finish, got %d", completed.Load())
	}
}

func TestExecuteTasks_Empty(t *testing.T) {
	t.Parallel()
	fragments, err := ExecuteTasks(context.Background(), nil, render.Env{})
	if err != nil {
		t.Fatalf("ExecuteTasks(nil) error = %v", err)
	}
	if got := Join(fragments); got != "" {
		t.Errorf("Join() = %q, want empty", got)
	}
}

func TestBuildTasks(t *testing.T) {
	t.Parallel()
	tasks, err := BuildTasks([]config.Metric{config.MetricMemory, config.MetricNetwork, config.MetricCPU})
	if err != nil {
		t.Fatalf("BuildTasks() error = %v", err)
	}
	want := []config.Metric{config.MetricMemory, config.MetricNetwork, config.MetricCPU}
	for i, task := range tasks {
		if task.Metric != want[i] || task.Render == nil {
			t.Errorf("task %d = %v (render nil: %v), want %v", i, task.Metric, task.Render == nil, want[i])
		}
	}

	if _, err := BuildTasks([]config.Metric{config.Metric(7)}); err == nil {
		t.Error("BuildTasks should reject unknown metrics")
	}
}

// gatedSleeper blocks the network renderer until the memory renderer has
// finished, forcing memory to complete first.
type gatedSleeper struct {
	gate <-chan struct{}
}

func (g gatedSleeper) Sleep(time.Duration) { <-g.gate }

// TestRun_NetworkThenMemory checks that "--net --mem" prints network first
// even when memory finishes before network.
func TestRun_NetworkThenMemory(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	memoryDone := make(chan struct{})

	gomock.InOrder(
		provider.EXPECT().SnapshotNetwork(gomock.Any()).Return(sysmon.NetworkSnapshot{}, nil),
		provider.EXPECT().SnapshotNetwork(gomock.Any()).Return(sysmon.NetworkSnapshot{BytesSent: 999, BytesReceived: 1024}, nil),
	)
	provider.EXPECT().SnapshotMemory(gomock.Any()).DoAndReturn(func(context.Context) (sysmon.MemorySnapshot, error) {
		defer close(memoryDone)
		return sysmon.MemorySnapshot{UsedMemory: 1 << 30, TotalMemory: 8 << 30, UsedSwap: 0, TotalSwap: 0}, nil
	})

	sleeper := gatedSleeper{gate: memoryDone}
	env := render.Env{
		Config:   config.Default(),
		Provider: provider,
		Sleeper:  sleeper,
		Sampler:  sampler.New(provider, sampler.WithSleeper(sleeper)),
	}
	line, err := Run(context.Background(), []config.Metric{config.MetricNetwork, config.MetricMemory}, env)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := "UP:   999B/s DOWN:    1KB/s MEM:    1GB/   8GB SWP:     0B/    0B"
	if line != want {
		t.Errorf("Run() = %q, want %q", line, want)
	}
}
