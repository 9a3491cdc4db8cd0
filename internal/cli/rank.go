package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcentrality/betweenness"
	"github.com/katalvlaran/lvlcentrality/rank"
)

func (a *app) rankCommand() *cobra.Command {
	var (
		src    sourceFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank nodes by betweenness centrality",
		Example: `  lvlcentrality rank --graph starwars.json --top 10
  lvlcentrality rank --topology grid --size 8 --normalize --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRank(cmd, &src, format)
		},
	}

	fs := cmd.Flags()
	src.register(fs)
	fs.StringVarP(&format, "format", "f", "table", "output format: table, json or csv")
	fs.Bool("normalize", false, "rescale scores to [0,1]")
	fs.IntP("top", "k", 10, "number of nodes to print (0 = all)")
	fs.String("strategy", "auto", "shortest paths: auto, unit or weighted")

	return cmd
}

func (a *app) runRank(cmd *cobra.Command, src *sourceFlags, format string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	in, err := src.load(a.cfg)
	if err != nil {
		return err
	}
	n := in.graph.NodeCount()
	logger.Debug("graph loaded", "nodes", n, "arcs", in.graph.ArcCount(), "directed", in.directed)

	prog := newProgress(logger)
	opts := append(a.cfg.ComputeOptions(),
		betweenness.WithDirected(in.directed),
		betweenness.WithLogger(logger),
		betweenness.WithProgress(sourceTicker(logger)),
	)
	res, err := betweenness.Compute(ctx, in.graph, opts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("betweenness over %d nodes", n))

	rep := newReport(a.runID, "betweenness", n, a.top(res.Ranking()), in.names())
	rep.Directed = res.Directed
	rep.Normalized = res.Normalized
	rep.Strategy = res.Strategy.String()

	return writeReport(a.stdout, format, rep)
}

// top cuts r to the configured top_k; 0 keeps every node.
func (a *app) top(r rank.Ranking) rank.Ranking {
	if a.cfg.TopK == 0 {
		return r
	}
	return rank.TopK(r, a.cfg.TopK)
}
