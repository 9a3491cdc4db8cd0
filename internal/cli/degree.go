package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcentrality/degree"
	"github.com/katalvlaran/lvlcentrality/rank"
)

func (a *app) degreeCommand() *cobra.Command {
	var (
		src    sourceFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "degree",
		Short: "Rank nodes by degree centrality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := src.load(a.cfg)
			if err != nil {
				return err
			}
			scores := degree.Centrality(in.graph, in.directed)
			loggerFromContext(cmd.Context()).Debug("degree centrality", "nodes", len(scores))

			rep := newReport(a.runID, "degree", len(scores), a.top(rank.Rank(scores)), in.names())
			rep.Directed = in.directed
			return writeReport(a.stdout, format, rep)
		},
	}

	fs := cmd.Flags()
	src.register(fs)
	fs.StringVarP(&format, "format", "f", "table", "output format: table, json or csv")
	fs.IntP("top", "k", 10, "number of nodes to print (0 = all)")

	return cmd
}
