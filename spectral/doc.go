// Package spectral partitions a core.Graph with unnormalized spectral
// clustering.
//
// Pipeline:
//
//	graph ──▶ Laplacian L = D − A ──▶ Embed (smallest non-zero eigenpairs)
//	      ──▶ KMeans over the embedded rows ──▶ one cluster label per node
//
// The graph is read as undirected with unit edge strength: an arc in either
// direction links two nodes, self-loops and costs are ignored. Eigenvalues
// at or below ZeroTolerance (one per connected component) carry no
// partition information and are skipped.
//
// Eigen-decomposition uses gonum's symmetric solver, so memory is O(N²) and
// time O(N³); the package targets graphs of a few thousand nodes.
//
// Determinism: eigenvector signs are fixed (first significant entry
// positive), k-means draws its initial centers from a seeded generator, and
// cluster labels are renumbered by first appearance in node order. The same
// graph, k and options always yield the same labels.
package spectral
