package spectral

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the spectral package.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("spectral: graph is nil")

	// ErrBadClusterCount indicates k < 1 or k greater than the number of points.
	ErrBadClusterCount = errors.New("spectral: cluster count out of range")

	// ErrTooFewEigenpairs indicates fewer non-zero eigenvalues than requested
	// dimensions (e.g. too many connected components).
	ErrTooFewEigenpairs = errors.New("spectral: not enough non-zero eigenpairs")

	// ErrEigenFailed indicates the eigen solver did not converge.
	ErrEigenFailed = errors.New("spectral: eigen decomposition did not converge")

	// ErrDegenerateEmbedding indicates fewer distinct points than clusters.
	ErrDegenerateEmbedding = errors.New("spectral: fewer distinct points than clusters")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spectral: invalid option supplied")
)

const (
	// ZeroTolerance is the eigenvalue magnitude treated as zero.
	ZeroTolerance = 1e-10

	// DefaultSeed seeds the k-means center draw.
	DefaultSeed int64 = 42

	// DefaultMaxIter caps k-means iterations.
	DefaultMaxIter = 100
)

// Option configures Cluster. Invalid values are recorded and surfaced as
// ErrOptionViolation when Cluster runs.
type Option func(*Options)

// Options holds the parameters of one clustering run.
type Options struct {
	// Dimensions is the number of eigenvectors embedded; 0 means k.
	Dimensions int

	// Seed drives the k-means initial center draw.
	Seed int64

	// MaxIter caps k-means iterations.
	MaxIter int

	// Logger receives debug lines; nil disables logging.
	Logger *log.Logger

	err error
}

// DefaultOptions returns dimensions = k, DefaultSeed, DefaultMaxIter and no
// logger.
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed, MaxIter: DefaultMaxIter}
}

// WithDimensions sets the number of eigenvectors in the embedding.
// d == 0 restores the default (one per cluster); d < 0 is invalid.
func WithDimensions(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: dimensions must be >= 0 (%d)", ErrOptionViolation, d)
			return
		}
		o.Dimensions = d
	}
}

// WithSeed sets the k-means seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxIter caps k-means iterations; n < 1 is invalid.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Result is the outcome of Cluster.
type Result struct {
	// Labels[v] is the cluster of node v, in [0, k).
	Labels []int

	// Sizes[c] is the number of nodes in cluster c.
	Sizes []int

	// Eigenvalues are the embedded eigenvalues, ascending.
	Eigenvalues []float64

	// Embedding holds one row per node and one column per eigenvector.
	Embedding *mat.Dense

	// Iterations is the number of k-means rounds run.
	Iterations int
}

// Members returns the nodes of cluster c in ascending order.
func (r *Result) Members(c int) []int {
	var out []int
	for v, l := range r.Labels {
		if l == c {
			out = append(out, v)
		}
	}
	return out
}

// EigenvectorRows returns the embedding transposed: one slice per
// eigenvector, one entry per node.
func (r *Result) EigenvectorRows() [][]float64 {
	n, d := r.Embedding.Dims()
	rows := make([][]float64, d)
	for j := range rows {
		rows[j] = mat.Col(make([]float64, n), j, r.Embedding)
	}
	return rows
}
