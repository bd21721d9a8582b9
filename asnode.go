package bgpsim

// ASNode is one Autonomous System in the topology. It owns exactly one
// Policy instance and three disjoint, deduplicated neighbor sets. Neighbor
// links are non-owning: an ASNode's lifetime is tied to the ASGraph that
// created it, and neighbor maps merely reference other nodes owned by the
// same graph.
type ASNode struct {
	Asn  int
	Rank int // -1 until ComputeRanks assigns it

	Customers map[int]*ASNode
	Providers map[int]*ASNode
	Peers     map[int]*ASNode

	Policy Policy
}

func newASNode(asn int) *ASNode {
	return &ASNode{
		Asn:       asn,
		Rank:      -1,
		Customers: make(map[int]*ASNode),
		Providers: make(map[int]*ASNode),
		Peers:     make(map[int]*ASNode),
	}
}

// addCustomer/addProvider/addPeer are idempotent: loading the same edge
// twice (duplicate lines in a relationships file, or the same edge present
// in two files) leaves the neighbor set unchanged.
func (n *ASNode) addCustomer(c *ASNode) { n.Customers[c.Asn] = c }
func (n *ASNode) addProvider(p *ASNode) { n.Providers[p.Asn] = p }
func (n *ASNode) addPeer(p *ASNode)     { n.Peers[p.Asn] = p }
