package bgpsim

import (
	"fmt"
	"strconv"
	"strings"
)

// SeedAnnouncements reads the seed-announcement CSV (header row discarded;
// each subsequent row "seed_asn,prefix,rov_invalid") and injects one origin
// Announcement per row. After every row has been queued, ProcessReceived
// runs exactly once on every AS in the graph so origins populate local RIBs
// before propagation begins.
func SeedAnnouncements(g *ASGraph, filename string) error {
	r := newCompressedReader(filename)
	if err := r.Open(); err != nil {
		return fmt.Errorf("could not open announcement file %q: %w", filename, err)
	}
	defer r.Close()

	scanner := r.Scanner()
	if !scanner.Scan() { // discard header
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			continue
		}

		seedAsn, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue
		}
		prefix := strings.TrimSpace(fields[1])

		rovInvalid := false
		if len(fields) >= 3 {
			rovInvalid = strings.EqualFold(strings.TrimSpace(fields[2]), "true")
		}

		node := g.GetOrCreate(seedAsn)
		ann := Announcement{
			Prefix:     prefix,
			AsPath:     []int{seedAsn},
			NextHopAsn: seedAsn,
			Rel:        Origin,
			RovInvalid: rovInvalid,
		}
		node.Policy.Receive(prefix, ann, Origin)
	}

	for _, n := range g.Nodes() {
		n.Policy.ProcessReceived()
	}
	return nil
}
