package nrpa

import (
	"time"

	"github.com/nrpa-go/nrpa/internal/parameters"
)

// Limits on the recursion and scratch-buffer sizes a Config is allowed to request,
// matching the reference implementation's compile-time template bounds -- here
// they are runtime checks instead, enforced by Validate.
const (
	MaxLevel      = 16
	MaxIter       = 1_000_000
	MaxThreads    = 1024
	MaxTimeEvents = 24
)

// Config is the search's configuration surface: how many independent runs, how
// deep to recurse, how many iterations per level, the wall-clock budget, and where
// (if anywhere) to parallelize.
type Config struct {
	// NumRun is the number of independent top-level searches to perform.
	NumRun int

	// NumLevel is the top level of recursion; level 0 is a single playout.
	NumLevel int

	// NumIter is N, the number of iterations run at every level above 0.
	NumIter int

	// Timeout is the wall-clock cut-off for the whole search; 0 means no timeout.
	Timeout time.Duration

	// NumThread is the worker pool size: 1 means sequential, 0 means
	// runtime.GOMAXPROCS(0), anything else is used directly.
	NumThread int

	// ParallelLevel is the recursion level at which batches of NumThread
	// sub-searches are dispatched to the worker pool. Ignored if NumThread == 1.
	ParallelLevel int

	// Stats enables recording per-iteration and per-timer-event samples.
	Stats bool

	// Tag is an optional filename suffix used when writing stats files.
	Tag string
}

// DefaultConfig returns the reference implementation's defaults: one run, level 1,
// N=10 iterations, no timeout, sequential execution.
func DefaultConfig() Config {
	return Config{
		NumRun:        1,
		NumLevel:      1,
		NumIter:       10,
		Timeout:       0,
		NumThread:     1,
		ParallelLevel: 0,
		Stats:         false,
	}
}

// ParseConfig parses a Params map (as produced by parameters.NewFromConfigString)
// into a Config, starting from DefaultConfig for any key left unset.
func ParseConfig(params parameters.Params) (Config, error) {
	cfg := DefaultConfig()
	var err error

	if cfg.NumRun, err = parameters.PopParamOr(params, "num_run", cfg.NumRun); err != nil {
		return Config{}, err
	}
	if cfg.NumLevel, err = parameters.PopParamOr(params, "num_level", cfg.NumLevel); err != nil {
		return Config{}, err
	}
	if cfg.NumIter, err = parameters.PopParamOr(params, "num_iter", cfg.NumIter); err != nil {
		return Config{}, err
	}
	timeoutSeconds, err := parameters.PopParamOr(params, "timeout", int(cfg.Timeout/time.Second))
	if err != nil {
		return Config{}, err
	}
	cfg.Timeout = time.Duration(timeoutSeconds) * time.Second
	if cfg.NumThread, err = parameters.PopParamOr(params, "num_thread", cfg.NumThread); err != nil {
		return Config{}, err
	}
	if cfg.ParallelLevel, err = parameters.PopParamOr(params, "parallel_level", cfg.ParallelLevel); err != nil {
		return Config{}, err
	}
	if cfg.Stats, err = parameters.PopParamOr(params, "stats", cfg.Stats); err != nil {
		return Config{}, err
	}
	if cfg.Tag, err = parameters.PopParamOr(params, "tag", cfg.Tag); err != nil {
		return Config{}, err
	}

	if len(params) > 0 {
		for k := range params {
			return Config{}, configErrorf("unrecognized configuration key %q", k)
		}
	}

	return cfg, nil
}

// Validate checks the configuration-error conditions from the error handling
// design: level and iteration counts must stay within the compile-time-style
// limits above, and the thread count must be sane.
func (c Config) Validate() error {
	if c.NumRun < 1 {
		return configErrorf("num_run must be >= 1, got %d", c.NumRun)
	}
	if c.NumLevel < 0 || c.NumLevel >= MaxLevel {
		return configErrorf("num_level must be in [0, %d), got %d", MaxLevel, c.NumLevel)
	}
	if c.NumIter < 1 || c.NumIter >= MaxIter {
		return configErrorf("num_iter must be in [1, %d), got %d", MaxIter, c.NumIter)
	}
	if c.NumThread < 0 || c.NumThread >= MaxThreads {
		return configErrorf("num_thread must be in [0, %d), got %d", MaxThreads, c.NumThread)
	}
	// parallel_level names the recursion frame whose N calls to the level below
	// get batched; level 0 has no such frame (it is the playout base case
	// itself), so the valid range starts at 1, not 0.
	if c.NumThread != 1 && (c.ParallelLevel < 1 || c.ParallelLevel >= c.NumLevel) {
		return configErrorf("parallel_level must be in [1, %d) when num_thread != 1, got %d",
			c.NumLevel, c.ParallelLevel)
	}
	if c.Timeout < 0 {
		return configErrorf("timeout must be >= 0, got %s", c.Timeout)
	}
	return nil
}
