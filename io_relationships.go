package bgpsim

import (
	"fmt"
	"strconv"
	"strings"
)

// LoadCAIDARelationships reads a CAIDA-style as-rel file (one edge per
// line, "as1|as2|rel" with rel in {-1, 0}) and adds the edges to g.
// Malformed lines -- non-numeric fields, or fewer than three fields -- are
// skipped rather than treated as fatal. Loading the same edge twice,
// whether from one file or across repeated calls, is a no-op thanks to
// ASNode's deduplicated neighbor maps.
func LoadCAIDARelationships(g *ASGraph, filename string) error {
	r := newCompressedReader(filename)
	if err := r.Open(); err != nil {
		return fmt.Errorf("could not open relationships file %q: %w", filename, err)
	}
	defer r.Close()

	scanner := r.Scanner()
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 3 {
			continue
		}
		as1, err1 := strconv.Atoi(strings.TrimSpace(fields[0]))
		as2, err2 := strconv.Atoi(strings.TrimSpace(fields[1]))
		rel, err3 := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}

		n1 := g.GetOrCreate(as1)
		n2 := g.GetOrCreate(as2)

		switch rel {
		case -1: // as1 is provider of as2
			n1.addCustomer(n2)
			n2.addProvider(n1)
		case 0: // peer/peer
			n1.addPeer(n2)
			n2.addPeer(n1)
		}
	}
	return nil
}
