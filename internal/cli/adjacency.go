package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcentrality/internal/graphio"
)

func (a *app) adjacencyCommand() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "adjacency",
		Short: "Write the 0/1 adjacency matrix as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := src.load(a.cfg)
			if err != nil {
				return err
			}
			return graphio.WriteAdjacencyCSV(a.stdout, in.graph)
		},
	}
	src.register(cmd.Flags())

	return cmd
}
