package orchestration

import (
	"context"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/statline/internal/config"
	apperrors "github.com/agbru/statline/internal/errors"
	"github.com/agbru/statline/internal/logging"
	"github.com/agbru/statline/internal/render"
)

// Separator joins fragments into the status line.
const Separator = " "

// BuildTasks maps each requested metric, in order, to its renderer.
func BuildTasks(metrics []config.Metric) ([]Task, error) {
	tasks := make([]Task, 0, len(metrics))
	for _, m := range metrics {
		fn := render.For(m)
		if fn == nil {
			return nil, apperrors.NewConfigError("unknown metric: %v", m)
		}
		tasks = append(tasks, Task{Metric: m, Render: fn})
	}
	return tasks, nil
}

// ExecuteTasks runs every task in its own goroutine and returns the fragments
// sorted by request index.
//
// Renderers are not cancelled when a sibling fails: the sleeps inside them
// are plain blocking waits, so every goroutine runs to completion before the
// first error is returned.
//
// Parameters:
//   - ctx: The context handed to the renderers.
//   - tasks: The renderers to run, in request order.
//   - env: The renderer environment; each goroutine receives its own copy.
//
// Returns:
//   - []Fragment: The fragments in request order.
//   - error: The first RenderError, in request order, if any renderer failed.
func ExecuteTasks(ctx context.Context, tasks []Task, env render.Env) ([]Fragment, error) {
	logger := env.Logger
	if logger == nil {
		logger = logging.NopLogger{}
	}

	var g errgroup.Group
	results := make(chan Fragment, len(tasks))
	for i, task := range tasks {
		taskEnv := env
		g.Go(func() error {
			start := time.Now()
			text, err := task.Render(ctx, taskEnv)
			if err != nil {
				err = apperrors.RenderError{Metric: task.Metric.String(), Cause: err}
			}
			logger.Debug("fragment rendered",
				logging.Int("index", i),
				logging.String("metric", task.Metric.String()),
				logging.Duration("elapsed", time.Since(start)),
			)
			results <- Fragment{Index: i, Metric: task.Metric, Text: text, Err: err}
			return nil
		})
	}
	g.Wait()
	close(results)

	fragments := make([]Fragment, 0, len(tasks))
	for f := range results {
		fragments = append(fragments, f)
	}
	slices.SortFunc(fragments, func(a, b Fragment) int { return a.Index - b.Index })

	for _, f := range fragments {
		if f.Err != nil {
			return nil, f.Err
		}
	}
	return fragments, nil
}

// Join concatenates fragment texts with a single space.
func Join(fragments []Fragment) string {
	texts := make([]string, len(fragments))
	for i, f := range fragments {
		texts[i] = f.Text
	}
	return strings.Join(texts, Separator)
}

// Run renders the requested metrics concurrently and returns the status line.
func Run(ctx context.Context, metrics []config.Metric, env render.Env) (string, error) {
	tasks, err := BuildTasks(metrics)
	if err != nil {
		return "", err
	}
	fragments, err := ExecuteTasks(ctx, tasks, env)
	if err != nil {
		return "", err
	}
	return Join(fragments), nil
}
