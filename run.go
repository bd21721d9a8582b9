package bgpsim

// Run loads relationships, checks for cycles, computes ranks, loads ROV
// ASNs, seeds origin announcements, and drives convergence.
//
// relFiles may contain one or more CAIDA relationship files, loaded in
// sequence as a union of edges. rovFile and annFile may be empty to skip
// ROV and seeding respectively.
//
// If the provider relation contains a cycle, Run reports it (via
// DetectCyclesAndPrintIfAny's diagnostic) and aborts before ComputeRanks,
// since Kahn's algorithm never terminates on a cyclic provider graph. ok is
// false in that case and the graph is left without ranks or a converged
// RIB; see DESIGN.md for this decision.
func Run(relFiles []string, annFile, rovFile string, parallelism int) (g *ASGraph, ok bool, err error) {
	g = NewASGraph()
	g.Parallelism = parallelism

	for _, f := range relFiles {
		if loadErr := LoadCAIDARelationships(g, f); loadErr != nil {
			return g, false, loadErr
		}
	}

	if g.DetectCyclesAndPrintIfAny() {
		return g, false, nil
	}
	g.ComputeRanks()

	if rovFile != "" {
		if loadErr := LoadROVASNs(g, rovFile); loadErr != nil {
			return g, false, loadErr
		}
	}

	if annFile != "" {
		if loadErr := SeedAnnouncements(g, annFile); loadErr != nil {
			return g, false, loadErr
		}
	}

	Converge(g)
	return g, true, nil
}

// Converge runs 2*len(ranks) rounds of up/across/down propagation, a loose
// upper bound that is safe for a monotone, withdrawal-free selection
// process to reach its fixed point.
func Converge(g *ASGraph) {
	rounds := 2 * len(g.Ranks())
	for i := 0; i < rounds; i++ {
		g.PropagateUp()
		g.PropagateAcross()
		g.PropagateDown()
	}
}
