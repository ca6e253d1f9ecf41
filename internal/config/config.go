package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	apperrors "github.com/agbru/statline/internal/errors"
)

// EnvPrefix is the prefix for all environment variables read by statline.
const EnvPrefix = "STATLINE_"

const (
	// DefaultInterval is the sampling window used when --interval is absent.
	DefaultInterval = time.Second
	// DefaultLogLevel keeps a normal invocation silent on stderr.
	DefaultLogLevel = "warn"
)

// Metric identifies one status-line fragment.
type Metric int

const (
	MetricNetwork Metric = iota
	MetricCPU
	MetricMemory
)

// String returns the flag name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricNetwork:
		return "net"
	case MetricCPU:
		return "cpu"
	case MetricMemory:
		return "mem"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// AppConfig holds the settings of a single invocation. It is built once and
// then passed by value to every renderer.
type AppConfig struct {
	// Metrics lists the requested fragments in command-line order.
	Metrics []Metric
	// ShowIcons selects glyph labels instead of text labels.
	ShowIcons bool
	// Interval is the sampling window of the rate-based metrics.
	Interval time.Duration
	// FixedWidth clamps numbers into their column budgets.
	FixedWidth bool
	// LogLevel is the diagnostic level written to stderr.
	LogLevel string
	// ShowVersion requests the version banner instead of sampling.
	ShowVersion bool
}

// Default returns the configuration used when no flag overrides it.
func Default() AppConfig {
	return AppConfig{
		Interval:   DefaultInterval,
		FixedWidth: true,
		LogLevel:   DefaultLogLevel,
	}
}

// Has reports whether m was requested at least once.
func (c AppConfig) Has(m Metric) bool {
	for _, requested := range c.Metrics {
		if requested == m {
			return true
		}
	}
	return false
}

// ParseConfig parses command-line arguments into an AppConfig, then applies
// STATLINE_* environment overrides for anything not set on the command line.
//
// Every problem is reported on errWriter before returning, so callers only
// need to map the returned error to an exit code.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The arguments without the program name.
//   - errWriter: Destination of usage and error messages.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for --help, otherwise a ConfigError or ValidationError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := Default()
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [--net] [--cpu] [--mem] [--with-icons] [--no-fix-length] [--interval SECONDS]\n\n", programName)
		fmt.Fprintln(errWriter, "Metric flags may be given in any order; fragments are printed in that order.")
		fmt.Fprintln(errWriter)
		fs.PrintDefaults()
	}

	fs.BoolFunc("net", "show network throughput", appendMetric(&cfg, MetricNetwork))
	fs.BoolFunc("cpu", "show average CPU usage", appendMetric(&cfg, MetricCPU))
	fs.BoolFunc("mem", "show memory and swap usage", appendMetric(&cfg, MetricMemory))
	fs.BoolVar(&cfg.ShowIcons, "with-icons", false, "use glyph labels instead of text labels")
	fs.BoolFunc("no-fix-length", "disable fixed-width number formatting", func(v string) error {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		cfg.FixedWidth = !on
		return nil
	})
	fs.Func("interval", "sampling window in whole `seconds` (default 1)", func(v string) error {
		d, err := ParseInterval(v)
		if err != nil {
			return err
		}
		cfg.Interval = d
		return nil
	})
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unknown option: %s", fs.Arg(0))
		fmt.Fprintln(errWriter, err)
		return cfg, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errWriter, err)
		return cfg, err
	}
	return cfg, nil
}

func appendMetric(cfg *AppConfig, m Metric) func(string) error {
	return func(v string) error {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		if on {
			cfg.Metrics = append(cfg.Metrics, m)
		}
		return nil
	}
}

// ParseInterval parses a non-negative integer number of seconds.
func ParseInterval(v string) (time.Duration, error) {
	secs, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad interval %q: must be a non-negative integer", v)
	}
	if secs > uint64(math.MaxInt64/int64(time.Second)) {
		return 0, fmt.Errorf("bad interval %q: too large", v)
	}
	return time.Duration(secs) * time.Second, nil
}

// Validate checks cross-field constraints. A zero interval is only an error
// when a rate has to be divided by it.
func (c AppConfig) Validate() error {
	if c.Interval < time.Second && c.Has(MetricNetwork) {
		return apperrors.ValidationError{Field: "interval", Message: "must be at least 1 second for --net"}
	}
	return nil
}
