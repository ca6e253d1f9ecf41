package render

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/agbru/statline/internal/format"
	"github.com/agbru/statline/internal/logging"
)

// Memory renders used/total memory and used/total swap from a single
// snapshot. It never waits.
func Memory(ctx context.Context, env Env) (string, error) {
	snap, err := env.Provider.SnapshotMemory(ctx)
	if err != nil {
		return "", err
	}
	env.logger().Debug("memory sampled",
		logging.String("used", humanize.IBytes(snap.UsedMemory)),
		logging.String("total", humanize.IBytes(snap.TotalMemory)),
		logging.String("swap_used", humanize.IBytes(snap.UsedSwap)),
		logging.String("swap_total", humanize.IBytes(snap.TotalSwap)),
	)

	fixed := env.Config.FixedWidth
	l := labelsFor(env.Config.ShowIcons)
	return fmt.Sprintf("%s%*s/%*s %s%*s/%*s",
		l.mem,
		ByteWidth, format.FormatBytes(snap.UsedMemory, fixed, ByteWidth),
		ByteWidth, format.FormatBytes(snap.TotalMemory, fixed, ByteWidth),
		l.swap,
		ByteWidth, format.FormatBytes(snap.UsedSwap, fixed, ByteWidth),
		ByteWidth, format.FormatBytes(snap.TotalSwap, fixed, ByteWidth),
	), nil
}
