package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcentrality/internal/graphio"
	"github.com/katalvlaran/lvlcentrality/spectral"
)

// clusterFlags are the options of the cluster command.
type clusterFlags struct {
	clusters     int
	dims         int
	seed         int64
	maxIter      int
	format       string
	eigenvectors string
}

func (a *app) clusterCommand() *cobra.Command {
	var (
		src sourceFlags
		cf  clusterFlags
	)

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Partition nodes by spectral clustering",
		Example: `  lvlcentrality cluster --graph starwars.json --clusters 3 --eigenvectors vectors.csv
  lvlcentrality cluster --topology grid --size 6 -c 4 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCluster(cmd, &src, &cf)
		},
	}

	fs := cmd.Flags()
	src.register(fs)
	fs.IntVarP(&cf.clusters, "clusters", "c", 3, "number of clusters")
	fs.IntVar(&cf.dims, "dims", 0, "eigenvectors to embed (0 = one per cluster)")
	fs.Int64Var(&cf.seed, "kmeans-seed", spectral.DefaultSeed, "seed for the k-means center draw")
	fs.IntVar(&cf.maxIter, "max-iter", spectral.DefaultMaxIter, "k-means iteration cap")
	fs.StringVarP(&cf.format, "format", "f", "table", "output format: table, json or csv")
	fs.StringVar(&cf.eigenvectors, "eigenvectors", "", "also write the embedded eigenvectors as CSV to this file")

	return cmd
}

func (a *app) runCluster(cmd *cobra.Command, src *sourceFlags, cf *clusterFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	in, err := src.load(a.cfg)
	if err != nil {
		return err
	}
	n := in.graph.NodeCount()

	prog := newProgress(logger)
	res, err := spectral.Cluster(ctx, in.graph, cf.clusters,
		spectral.WithDimensions(cf.dims),
		spectral.WithSeed(cf.seed),
		spectral.WithMaxIter(cf.maxIter),
		spectral.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("%d clusters over %d nodes", cf.clusters, n))

	if cf.eigenvectors != "" {
		if err := writeEigenvectors(cf.eigenvectors, res); err != nil {
			return err
		}
	}

	rep := newClusterReport(a.runID, res, in.names())
	return writeClusterReport(a.stdout, cf.format, rep)
}

func writeEigenvectors(path string, res *spectral.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cluster: %w", err)
	}
	defer f.Close()

	if err := graphio.WriteVectorsCSV(f, res.EigenvectorRows()); err != nil {
		return err
	}
	return f.Close()
}

// clusterReport is the JSON form of a clustering.
type clusterReport struct {
	RunID       string       `json:"run_id"`
	Nodes       int          `json:"nodes"`
	Clusters    int          `json:"clusters"`
	Sizes       []int        `json:"sizes"`
	Eigenvalues []float64    `json:"eigenvalues"`
	Iterations  int          `json:"iterations"`
	Assignments []assignment `json:"assignments"`

	labels []int
	names  []string
}

// assignment is one node and its cluster.
type assignment struct {
	Node    int    `json:"node"`
	Name    string `json:"name"`
	Cluster int    `json:"cluster"`
}

func newClusterReport(runID string, res *spectral.Result, names []string) clusterReport {
	as := make([]assignment, len(res.Labels))
	for v, c := range res.Labels {
		as[v] = assignment{Node: v, Name: names[v], Cluster: c}
	}
	return clusterReport{
		RunID:       runID,
		Nodes:       len(res.Labels),
		Clusters:    len(res.Sizes),
		Sizes:       res.Sizes,
		Eigenvalues: res.Eigenvalues,
		Iterations:  res.Iterations,
		Assignments: as,
		labels:      res.Labels,
		names:       names,
	}
}

// writeClusterReport renders rep to w as "table", "json" or "csv".
func writeClusterReport(w io.Writer, format string, rep clusterReport) error {
	switch format {
	case "table":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("NODE", "NAME", "CLUSTER").
			StyleFunc(func(r, _ int) lipgloss.Style {
				if r == table.HeaderRow {
					return styleHeader
				}
				return styleCell
			})
		for _, as := range rep.Assignments {
			t.Row(strconv.Itoa(as.Node), as.Name, strconv.Itoa(as.Cluster))
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "csv":
		return graphio.WriteClusterCSV(w, rep.labels, rep.names)
	default:
		return fmt.Errorf("%w: %q (want table, json or csv)", ErrUnknownFormat, format)
	}
}
