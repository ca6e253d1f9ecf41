// Package render produces the labelled text fragment of each metric.
package render

import (
	"context"

	"github.com/agbru/statline/internal/config"
	"github.com/agbru/statline/internal/logging"
	"github.com/agbru/statline/internal/sampler"
	"github.com/agbru/statline/internal/sysmon"
)

// Column budgets of the rendered numbers.
const (
	// ByteWidth is the column count of a byte value including its unit, so
	// successive refreshes line up in the bar.
	ByteWidth = 6
	// PercentWidth is the column count of the CPU percentage.
	PercentWidth = 4
)

// Env is everything a renderer needs. It is passed by value so each
// concurrently running renderer owns its copy of the configuration.
//
// Network goes through Sampler for its counter delta. CPU and memory read
// Provider directly, and CPU waits on Sleeper.
type Env struct {
	Config   config.AppConfig
	Provider sysmon.Provider
	Sleeper  sampler.Sleeper
	Sampler  *sampler.Sampler
	Logger   logging.Logger
}

// Func renders one metric fragment.
type Func func(ctx context.Context, env Env) (string, error)

// For returns the renderer of a metric kind, or nil for an unknown kind.
func For(m config.Metric) Func {
	switch m {
	case config.MetricNetwork:
		return Network
	case config.MetricCPU:
		return CPU
	case config.MetricMemory:
		return Memory
	default:
		return nil
	}
}

func (e Env) logger() logging.Logger {
	if e.Logger == nil {
		return logging.NopLogger{}
	}
	return e.Logger
}
