package render

import (
	"context"
	"fmt"

	"github.com/agbru/statline/internal/format"
)

// Network samples throughput over the configured interval and renders
// "UP: <rate>/s DOWN: <rate>/s" with both rates right-aligned.
func Network(ctx context.Context, env Env) (string, error) {
	rate, err := env.Sampler.SampleRate(ctx, env.Config.Interval)
	if err != nil {
		return "", err
	}
	l := labelsFor(env.Config.ShowIcons)
	up := format.FormatBytes(rate.Up, env.Config.FixedWidth, ByteWidth)
	down := format.FormatBytes(rate.Down, env.Config.FixedWidth, ByteWidth)
	return fmt.Sprintf("%s%*s/s %s%*s/s", l.up, ByteWidth, up, l.down, ByteWidth, down), nil
}
