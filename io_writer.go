package bgpsim

import (
	"bufio"
	"fmt"
	"os"
	"sort"
)

// collectRibRows gathers every (asn, prefix, as_path_string) row across
// every AS in the graph and sorts them ascending by asn, then by prefix
// (lexicographic byte order).
func collectRibRows(g *ASGraph) []RibRow {
	var rows []RibRow
	for _, n := range g.Nodes() {
		rows = n.Policy.DumpRibToCsvRows(rows)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Asn != rows[j].Asn {
			return rows[i].Asn < rows[j].Asn
		}
		return rows[i].Prefix < rows[j].Prefix
	})
	return rows
}

// WriteRIBsCSV writes the header "asn,prefix,as_path" followed by one row
// per (asn, prefix) present in any RIB, with as_path always double-quoted.
func WriteRIBsCSV(g *ASGraph, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open output ribs file %q: %w", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString("asn,prefix,as_path\n"); err != nil {
		return err
	}
	for _, row := range collectRibRows(g) {
		if _, err := fmt.Fprintf(w, "%d,%s,\"%s\"\n", row.Asn, row.Prefix, row.AsPath); err != nil {
			return err
		}
	}
	return w.Flush()
}
