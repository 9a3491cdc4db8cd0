package spectral_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlcentrality/builder"
	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/spectral"
)

const eps = 1e-9

// twoCliques joins two K4 (nodes 0..3 and 4..7) by the bridge 3-4.
// Its Laplacian spectrum is {0, 3-√7, 4 (×5), 3+√7}.
func twoCliques(t testing.TB) *core.Graph {
	t.Helper()
	var edges []core.Edge
	for _, base := range []int{0, 4} {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				edges = append(edges, core.Edge{From: base + i, To: base + j, Weight: 1})
			}
		}
	}
	edges = append(edges, core.Edge{From: 3, To: 4, Weight: 1})
	g, err := core.NewGraph(8, edges, core.WithSymmetric())
	require.NoError(t, err)
	return g
}

func TestLaplacian_Path(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithSymmetric()}, nil, builder.Path(3))
	require.NoError(t, err)

	l, err := spectral.Laplacian(g)
	require.NoError(t, err)
	want := mat.NewSymDense(3, []float64{
		1, -1, 0,
		-1, 2, -1,
		0, -1, 1,
	})
	assert.True(t, mat.Equal(want, l), "got %v", mat.Formatted(l))
}

func TestLaplacian_DirectedAndLoops(t *testing.T) {
	// 0→1, 1→0 with another weight, 2→1 and a self-loop on 2: the undirected
	// view is the path 0-1-2.
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 0, Weight: 5},
		{From: 2, To: 1, Weight: 2},
		{From: 2, To: 2, Weight: 1},
	})
	require.NoError(t, err)

	l, err := spectral.Laplacian(g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, l.At(0, 0))
	assert.Equal(t, 2.0, l.At(1, 1))
	assert.Equal(t, 1.0, l.At(2, 2))
	assert.Equal(t, -1.0, l.At(1, 2))
	assert.Equal(t, 0.0, l.At(0, 2))

	for u := 0; u < 3; u++ {
		assert.InDelta(t, 0, floats.Sum(mat.Row(nil, u, l)), eps, "row %d", u)
	}

	_, err = spectral.Laplacian(nil)
	assert.ErrorIs(t, err, spectral.ErrNilGraph)
}

func TestEmbed_SkipsZeroEigenvalue(t *testing.T) {
	l, err := spectral.Laplacian(twoCliques(t))
	require.NoError(t, err)

	eig, emb, err := spectral.Embed(l, 2)
	require.NoError(t, err)
	require.Len(t, eig, 2)
	assert.InDelta(t, 3-math.Sqrt(7), eig[0], eps)
	assert.InDelta(t, 4, eig[1], eps)

	rows, cols := emb.Dims()
	assert.Equal(t, 8, rows)
	assert.Equal(t, 2, cols)
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, emb)
		assert.InDelta(t, 1, floats.Norm(col, 2), eps, "column %d is a unit vector", j)
		assert.InDelta(t, 0, floats.Sum(col), eps, "column %d is orthogonal to the constant vector", j)
	}

	// The Fiedler vector separates the cliques; its first entry is positive.
	fiedler := mat.Col(nil, 0, emb)
	for v := 0; v < 4; v++ {
		assert.Positive(t, fiedler[v], "node %d", v)
		assert.Negative(t, fiedler[v+4], "node %d", v+4)
	}
}

func TestEmbed_Errors(t *testing.T) {
	// Two disjoint edges: spectrum {0, 0, 2, 2}.
	g, err := core.NewGraph(4, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 2, To: 3, Weight: 1}}, core.WithSymmetric())
	require.NoError(t, err)
	l, err := spectral.Laplacian(g)
	require.NoError(t, err)

	_, _, err = spectral.Embed(l, 2)
	require.NoError(t, err)

	_, _, err = spectral.Embed(l, 3)
	assert.ErrorIs(t, err, spectral.ErrTooFewEigenpairs)

	_, _, err = spectral.Embed(l, 0)
	assert.ErrorIs(t, err, spectral.ErrOptionViolation)
}

func blobs() *mat.Dense {
	return mat.NewDense(6, 2, []float64{
		0, 0,
		5, 5,
		0, 0.1,
		5, 5.1,
		0.1, 0,
		5.1, 5,
	})
}

func TestKMeans_Blobs(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		p, err := spectral.KMeans(context.Background(), blobs(), 2, seed, spectral.DefaultMaxIter)
		require.NoError(t, err, "seed=%d", seed)
		assert.Equal(t, []int{0, 1, 0, 1, 0, 1}, p.Labels, "seed=%d", seed)
		assert.InDelta(t, 0.1/3, p.Centers.At(0, 0), eps)
		assert.InDelta(t, 5+0.1/3, p.Centers.At(1, 1), eps)
		assert.GreaterOrEqual(t, p.Iterations, 1)
	}
}

func TestKMeans_SingleCluster(t *testing.T) {
	p, err := spectral.KMeans(context.Background(), blobs(), 1, 7, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, p.Labels)
	assert.InDelta(t, 15.2/6, p.Centers.At(0, 0), eps)
}

func TestKMeans_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := spectral.KMeans(ctx, blobs(), 0, 1, 10)
	assert.ErrorIs(t, err, spectral.ErrBadClusterCount)

	_, err = spectral.KMeans(ctx, blobs(), 7, 1, 10)
	assert.ErrorIs(t, err, spectral.ErrBadClusterCount)

	_, err = spectral.KMeans(ctx, blobs(), 2, 1, 0)
	assert.ErrorIs(t, err, spectral.ErrOptionViolation)

	same := mat.NewDense(3, 1, []float64{1, 1, 2})
	_, err = spectral.KMeans(ctx, same, 3, 1, 10)
	assert.ErrorIs(t, err, spectral.ErrDegenerateEmbedding)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = spectral.KMeans(cancelled, blobs(), 2, 1, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

// ClusterSuite exercises Cluster end to end.
type ClusterSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ClusterSuite) SetupTest() {
	s.ctx = context.Background()
}

// TestBridgedCliques: the Fiedler coordinate alone splits the two cliques
// for every seed.
func (s *ClusterSuite) TestBridgedCliques() {
	g := twoCliques(s.T())
	for seed := int64(0); seed < 10; seed++ {
		res, err := spectral.Cluster(s.ctx, g, 2, spectral.WithDimensions(1), spectral.WithSeed(seed))
		s.Require().NoError(err)
		s.Equal([]int{0, 0, 0, 0, 1, 1, 1, 1}, res.Labels, "seed=%d", seed)
		s.Equal([]int{4, 4}, res.Sizes)
		s.Equal([]int{4, 5, 6, 7}, res.Members(1))
		s.InDelta(3-math.Sqrt(7), res.Eigenvalues[0], eps)
	}
}

// TestDefaultDimensions embeds one eigenvector per cluster.
func (s *ClusterSuite) TestDefaultDimensions() {
	res, err := spectral.Cluster(s.ctx, twoCliques(s.T()), 2)
	s.Require().NoError(err)
	s.Len(res.Eigenvalues, 2)
	s.Len(res.Labels, 8)
	s.Equal(0, res.Labels[0], "labels are numbered by first appearance")
	for _, l := range res.Labels {
		s.True(l == 0 || l == 1)
	}
	s.Equal(8, res.Sizes[0]+res.Sizes[1])

	rows := res.EigenvectorRows()
	s.Require().Len(rows, 2)
	s.Len(rows[0], 8)
	s.Equal(res.Embedding.At(3, 1), rows[1][3])
}

// TestDeterministic: same inputs, same labels and embedding.
func (s *ClusterSuite) TestDeterministic() {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithSymmetric()}, nil, builder.Grid(5, 5))
	s.Require().NoError(err)

	a, err := spectral.Cluster(s.ctx, g, 3)
	s.Require().NoError(err)
	b, err := spectral.Cluster(s.ctx, g, 3)
	s.Require().NoError(err)
	s.Equal(a.Labels, b.Labels)
	s.True(mat.Equal(a.Embedding, b.Embedding))
}

func (s *ClusterSuite) TestErrors() {
	g := twoCliques(s.T())

	_, err := spectral.Cluster(s.ctx, nil, 2)
	s.ErrorIs(err, spectral.ErrNilGraph)

	_, err = spectral.Cluster(s.ctx, g, 0)
	s.ErrorIs(err, spectral.ErrBadClusterCount)

	_, err = spectral.Cluster(s.ctx, g, 9)
	s.ErrorIs(err, spectral.ErrBadClusterCount)

	_, err = spectral.Cluster(s.ctx, g, 2, spectral.WithDimensions(-1))
	s.ErrorIs(err, spectral.ErrOptionViolation)

	_, err = spectral.Cluster(s.ctx, g, 2, spectral.WithMaxIter(0))
	s.ErrorIs(err, spectral.ErrOptionViolation)

	single, err := core.NewGraph(1, nil)
	s.Require().NoError(err)
	_, err = spectral.Cluster(s.ctx, single, 1)
	s.ErrorIs(err, spectral.ErrTooFewEigenpairs)
}

func TestClusterSuite(t *testing.T) {
	suite.Run(t, new(ClusterSuite))
}
