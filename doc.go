// Package lvlcentrality ranks the nodes of a graph by how much shortest-path
// traffic flows through them.
//
// What is inside:
//
//	• Core graph: an immutable, index-addressed adjacency with validated weights
//	• Shortest paths: BFS for unit costs, Dijkstra for positive weights,
//	  both counting every shortest path and recording predecessor sets
//	• Betweenness: Brandes' dependency accumulation, sequential or split
//	  across workers, with optional normalization
//	• Degree centrality and deterministic top-k ranking
//	• Spectral clustering: Laplacian embedding and seeded k-means
//	• Builders: path, star, cycle, wheel, complete, bipartite, grid, random
//
// Subpackages:
//
//	core/        : Graph, Edge, Arc, cost modes and validation errors
//	sssp/        : the shortest-path DAG shared by bfs and dijkstra
//	bfs/         : unit-cost single-source shortest paths
//	dijkstra/    : weighted single-source shortest paths
//	betweenness/ : Compute, Accumulate, strategies and options
//	degree/      : degree centrality
//	rank/        : score ordering and top-k selection
//	spectral/    : Laplacian, eigen embedding, k-means, Cluster
//	builder/     : deterministic topology constructors
//
// Quick ASCII example:
//
//	[0]───[1]───[2]───[3]───[4]
//
//	betweenness (raw):  0  3  4  3  0
//
// The command-line front end lives in cmd/lvlcentrality.
//
//	go install github.com/katalvlaran/lvlcentrality/cmd/lvlcentrality@latest
package lvlcentrality
