package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlcentrality/builder"
	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/internal/config"
	"github.com/katalvlaran/lvlcentrality/internal/graphio"
)

var (
	// ErrNoSource is returned when neither --graph nor --topology is given,
	// or both are.
	ErrNoSource = errors.New("cli: exactly one of --graph or --topology is required")

	// ErrUnknownTopology is returned for a --topology name with no builder.
	ErrUnknownTopology = errors.New("cli: unknown topology")
)

// topologies lists the names accepted by --topology.
var topologies = []string{"path", "star", "cycle", "wheel", "complete", "grid", "random"}

// sourceFlags selects the input graph: a node-link file or a generated
// topology.
type sourceFlags struct {
	graph     string
	topology  string
	size      int
	p         float64
	seed      int64
	maxWeight int
}

func (s *sourceFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&s.graph, "graph", "g", "", "node-link graph file (.yaml, .yml or .json)")
	s.registerTopology(fs)
}

func (s *sourceFlags) registerTopology(fs *pflag.FlagSet) {
	fs.StringVarP(&s.topology, "topology", "t", "", "generated topology: "+strings.Join(topologies, ", "))
	fs.IntVarP(&s.size, "size", "n", 10, "topology size (grid: side length)")
	fs.Float64Var(&s.p, "p", 0.1, "edge probability for the random topology")
	fs.Int64Var(&s.seed, "seed", 1, "random seed for generated topologies")
	fs.IntVar(&s.maxWeight, "max-weight", 1, "draw integer edge weights in [1,max-weight]")
}

// input is a loaded graph with its labels and orientation.
type input struct {
	doc      *graphio.Document
	graph    *core.Graph
	directed bool
}

// names returns one label per node.
func (in *input) names() []string { return in.doc.Names() }

// document resolves the flags into a node-link document.
func (s *sourceFlags) document(directed bool) (*graphio.Document, error) {
	switch {
	case s.graph != "" && s.topology != "", s.graph == "" && s.topology == "":
		return nil, ErrNoSource
	case s.graph != "":
		return graphio.ReadFile(s.graph)
	}

	con, idFn, err := s.constructor()
	if err != nil {
		return nil, err
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(s.seed),
		builder.WithDirected(directed),
		builder.WithIDScheme(idFn),
	}
	if s.maxWeight > 1 {
		bopts = append(bopts, builder.WithIntegerWeight(1, s.maxWeight))
	}
	b, err := builder.Assemble(bopts, con)
	if err != nil {
		return nil, err
	}

	return graphio.FromBlueprint(b, directed), nil
}

// constructor maps --topology and --size to a builder constructor and the
// label scheme that suits it.
func (s *sourceFlags) constructor() (builder.Constructor, builder.IDFn, error) {
	n := s.size
	switch strings.ToLower(s.topology) {
	case "path":
		return builder.Path(n), builder.DefaultIDFn, nil
	case "star":
		return builder.Star(n), builder.DefaultIDFn, nil
	case "cycle":
		return builder.Cycle(n), builder.DefaultIDFn, nil
	case "wheel":
		return builder.Wheel(n), builder.DefaultIDFn, nil
	case "complete":
		return builder.Complete(n), builder.DefaultIDFn, nil
	case "grid":
		if n < 1 {
			return nil, nil, fmt.Errorf("grid: side=%d: %w", n, builder.ErrTooFewVertices)
		}
		return builder.Grid(n, n), builder.GridIDFn(n), nil
	case "random":
		return builder.RandomSparse(n, s.p), builder.DefaultIDFn, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTopology, s.topology, strings.Join(topologies, ", "))
	}
}

// load reads or generates the graph. A document that declares itself
// directed is always analyzed as directed; --directed turns an undirected
// document into one-way links as listed.
func (s *sourceFlags) load(cfg *config.Config) (*input, error) {
	doc, err := s.document(cfg.Directed)
	if err != nil {
		return nil, err
	}
	doc.Directed = doc.Directed || cfg.Directed

	g, err := doc.Graph(core.WithCostMode(cfg.CostMode()))
	if err != nil {
		return nil, err
	}

	return &input{doc: doc, graph: g, directed: doc.Directed}, nil
}
