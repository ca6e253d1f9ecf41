package orchestration

import (
	"github.com/agbru/statline/internal/config"
	"github.com/agbru/statline/internal/render"
)

// Task pairs a requested metric with the renderer that produces it.
type Task struct {
	// Metric is the requested metric kind.
	Metric config.Metric
	// Render produces the fragment text.
	Render render.Func
}

// Fragment is the output of one renderer.
type Fragment struct {
	// Index is the position of the metric in the request. It is used only to
	// restore request order after concurrent execution.
	Index int
	// Metric is the metric kind that produced Text.
	Metric config.Metric
	// Text is the labelled fragment.
	Text string
	// Err is set when the renderer failed.
	Err error
}
