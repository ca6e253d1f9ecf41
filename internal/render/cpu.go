package render

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/agbru/statline/internal/format"
	"github.com/agbru/statline/internal/logging"
)

// ErrNoCores is returned when the provider reports no CPU cores.
var ErrNoCores = errors.New("no cpu cores reported")

// CPU opens a measurement window with a first read, sleeps for the
// configured interval and renders the mean of the per-core usage read at the
// end of the window. Unlike Network this is an instantaneous average, not a
// delta computed here.
func CPU(ctx context.Context, env Env) (string, error) {
	if _, err := env.Provider.SnapshotCPU(ctx); err != nil {
		return "", err
	}
	env.Sleeper.Sleep(env.Config.Interval)
	snap, err := env.Provider.SnapshotCPU(ctx)
	if err != nil {
		return "", err
	}
	if len(snap.CorePercents) == 0 {
		return "", ErrNoCores
	}

	var sum float64
	for _, pct := range snap.CorePercents {
		sum += pct
	}
	avg := sum / float64(len(snap.CorePercents))
	env.logger().Debug("cpu usage sampled",
		logging.Int("cores", len(snap.CorePercents)),
		logging.Float64("average", avg),
	)

	var value string
	if env.Config.FixedWidth {
		value = format.FormatPercent(avg, PercentWidth)
	} else {
		value = strconv.FormatFloat(avg, 'f', 2, 64)
	}
	return fmt.Sprintf("%s%*s", labelsFor(env.Config.ShowIcons).cpu, PercentWidth, value), nil
}
