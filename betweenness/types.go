package betweenness

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlcentrality/bfs"
	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/dijkstra"
	"github.com/katalvlaran/lvlcentrality/rank"
	"github.com/katalvlaran/lvlcentrality/sssp"
)

// Sentinel errors returned by the betweenness engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Compute.
	ErrNilGraph = errors.New("betweenness: graph is nil")

	// ErrNilResult indicates that Accumulate received a nil shortest-path result.
	ErrNilResult = errors.New("betweenness: shortest-path result is nil")

	// ErrInconsistentResult indicates a shortest-path result whose reachable
	// nodes carry a zero path count, or whose slices disagree in length.
	ErrInconsistentResult = errors.New("betweenness: inconsistent shortest-path result")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("betweenness: invalid option supplied")

	// ErrPrecisionLoss is returned when a path count exceeds MaxExactCount,
	// so the ratio sigma[p]/sigma[t] could no longer be formed exactly.
	ErrPrecisionLoss = errors.New("betweenness: path count exceeds exact float64 range")
)

// MaxExactCount is the largest path count a float64 represents without
// rounding (2^53).
const MaxExactCount uint64 = 1 << 53

// Strategy selects the single-source shortest-path solver.
type Strategy int

const (
	// StrategyAuto uses StrategyUnit when every arc has the same cost and
	// StrategyWeighted otherwise.
	StrategyAuto Strategy = iota

	// StrategyUnit runs breadth-first search; arc costs are ignored.
	StrategyUnit

	// StrategyWeighted runs Dijkstra over arc costs.
	StrategyWeighted
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyUnit:
		return "unit"
	case StrategyWeighted:
		return "weighted"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy resolves a configuration name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "auto":
		return StrategyAuto, nil
	case "unit":
		return StrategyUnit, nil
	case "weighted":
		return StrategyWeighted, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// resolve picks the concrete solver for g.
func (s Strategy) resolve(g *core.Graph) (Strategy, sssp.Solver) {
	if s == StrategyAuto {
		if g.UnitCost() {
			s = StrategyUnit
		} else {
			s = StrategyWeighted
		}
	}
	if s == StrategyUnit {
		return s, bfs.ShortestPaths
	}

	return s, dijkstra.ShortestPaths
}

// Option configures Compute via functional arguments.
// If an Option is invalid (e.g. negative workers), it is recorded
// internally and surfaced as ErrOptionViolation when Compute is invoked.
type Option func(*Options)

// Options holds the parameters of one betweenness computation.
type Options struct {
	// Directed disables the undirected halving and selects the directed
	// normalization factor.
	Directed bool

	// Normalize rescales scores to [0,1] when N > 2.
	Normalize bool

	// Strategy picks BFS or Dijkstra.
	Strategy Strategy

	// Workers is the number of goroutines; 1 means sequential.
	Workers int

	// Logger receives debug lines; nil disables logging.
	Logger *log.Logger

	// Progress, if set, is called after each source completes with the
	// number of finished sources and the total. It may be called from
	// several goroutines when Workers > 1.
	Progress func(done, total int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
// undirected, unnormalized, StrategyAuto, one worker, no logger.
func DefaultOptions() Options {
	return Options{
		Directed:  false,
		Normalize: false,
		Strategy:  StrategyAuto,
		Workers:   1,
	}
}

// WithDirected marks the graph as directed (no halving of totals).
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithNormalize enables rescaling by the maximum attainable pair count.
func WithNormalize(normalize bool) Option {
	return func(o *Options) { o.Normalize = normalize }
}

// WithStrategy selects the shortest-path strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < StrategyAuto || s > StrategyWeighted {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithWorkers sets the number of goroutines used across sources.
//
//	n > 1:  partition sources into n contiguous chunks
//	n == 1: sequential (default)
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithProgress registers a per-source completion callback.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) { o.Progress = fn }
}

// Result is the outcome of Compute.
type Result struct {
	// Scores[v] is the betweenness of node v.
	Scores []float64

	Directed   bool
	Normalized bool

	// Strategy is the concrete strategy used (never StrategyAuto).
	Strategy Strategy
}

// Ranking returns the scores sorted by descending value, ties by node index.
func (r *Result) Ranking() rank.Ranking {
	return rank.Rank(r.Scores)
}

// TopK returns at most k highest-scoring nodes.
func (r *Result) TopK(k int) rank.Ranking {
	return rank.TopK(r.Ranking(), k)
}
