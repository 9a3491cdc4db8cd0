package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvlcentrality/internal/graphio"
	"github.com/katalvlaran/lvlcentrality/rank"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("cli: unknown output format")

// csvDecimals is the score precision of CSV output.
const csvDecimals = 2

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

// report is the JSON form of a ranking.
type report struct {
	RunID      string `json:"run_id"`
	Measure    string `json:"measure"`
	Nodes      int    `json:"nodes"`
	Directed   bool   `json:"directed"`
	Normalized bool   `json:"normalized,omitempty"`
	Strategy   string `json:"strategy,omitempty"`
	Top        []row  `json:"top"`

	ranking rank.Ranking
	names   []string
}

// newReport labels the ranking with node names and 1-based positions.
func newReport(runID, measure string, nodes int, r rank.Ranking, names []string) report {
	top := make([]row, len(r))
	for i, e := range r {
		top[i] = row{Rank: i + 1, Node: e.Node, Name: names[e.Node], Score: e.Score}
	}
	return report{RunID: runID, Measure: measure, Nodes: nodes, Top: top, ranking: r, names: names}
}

// row is one ranked node.
type row struct {
	Rank  int     `json:"rank"`
	Node  int     `json:"node"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// writeReport renders rep to w as "table", "json" or "csv".
func writeReport(w io.Writer, format string, rep report) error {
	switch format {
	case "table":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("RANK", "NODE", "NAME", "SCORE").
			StyleFunc(func(r, _ int) lipgloss.Style {
				if r == table.HeaderRow {
					return styleHeader
				}
				return styleCell
			})
		for _, r := range rep.Top {
			t.Row(strconv.Itoa(r.Rank), strconv.Itoa(r.Node), r.Name, strconv.FormatFloat(r.Score, 'f', 4, 64))
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "csv":
		return graphio.WriteRankingCSV(w, rep.ranking, rep.names, csvDecimals)
	default:
		return fmt.Errorf("%w: %q (want table, json or csv)", ErrUnknownFormat, format)
	}
}
