package bgpsim

import (
	"fmt"
	"strconv"
	"strings"
)

// LoadROVASNs reads a newline-delimited list of ASNs performing Route
// Origin Validation and replaces each one's policy with an ROVPolicy.
// Non-numeric lines are skipped. Nodes absent from any relationships file
// are created on demand.
func LoadROVASNs(g *ASGraph, filename string) error {
	r := newCompressedReader(filename)
	if err := r.Open(); err != nil {
		return fmt.Errorf("could not open ROV ASN file %q: %w", filename, err)
	}
	defer r.Close()

	scanner := r.Scanner()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		asn, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		node := g.GetOrCreate(asn)
		node.Policy = NewROVPolicy(node)
	}
	return nil
}
