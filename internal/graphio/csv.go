package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/rank"
)

// WriteAdjacencyCSV writes the 0/1 adjacency matrix of g, one row per
// source node and no header. Self-loops appear on the diagonal.
func WriteAdjacencyCSV(w io.Writer, g *core.Graph) error {
	n := g.NodeCount()
	cw := csv.NewWriter(w)
	row := make([]string, n)
	for u := 0; u < n; u++ {
		for v := range row {
			row[v] = "0"
		}
		for _, a := range g.Neighbors(u) {
			row[a.To] = "1"
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("graphio: csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteRankingCSV writes one "name,score" record per entry with the score
// rounded to the given number of decimals.
func WriteRankingCSV(w io.Writer, r rank.Ranking, names []string, decimals int) error {
	cw := csv.NewWriter(w)
	for _, e := range r {
		name := strconv.Itoa(e.Node)
		if e.Node < len(names) {
			name = names[e.Node]
		}
		if err := cw.Write([]string{name, strconv.FormatFloat(e.Score, 'f', decimals, 64)}); err != nil {
			return fmt.Errorf("graphio: csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteClusterCSV writes one "name,cluster" record per node in node order.
func WriteClusterCSV(w io.Writer, labels []int, names []string) error {
	cw := csv.NewWriter(w)
	for v, c := range labels {
		name := strconv.Itoa(v)
		if v < len(names) {
			name = names[v]
		}
		if err := cw.Write([]string{name, strconv.Itoa(c)}); err != nil {
			return fmt.Errorf("graphio: csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteVectorsCSV writes each vector as one record, values in shortest
// round-trip form.
func WriteVectorsCSV(w io.Writer, vectors [][]float64) error {
	cw := csv.NewWriter(w)
	for _, vec := range vectors {
		rec := make([]string, len(vec))
		for i, x := range vec {
			rec[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("graphio: csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
