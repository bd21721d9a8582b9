package bgpsim

import (
	"log"
	"strconv"

	pool "github.com/Emeline-1/pool"
)

// ASGraph is the topology store: every ASNode keyed by ASN, plus the
// rank buckets computed by ComputeRanks. ASGraph owns every ASNode it
// creates; ASNode neighbor maps are non-owning back-references whose
// validity is tied to this graph's lifetime.
type ASGraph struct {
	nodes map[int]*ASNode
	ranks [][]*ASNode

	// Parallelism bounds how many ASes a single phase sweep (Send* or
	// ProcessReceived) may run concurrently via github.com/Emeline-1/pool.
	// 0 or 1 means strictly sequential, which is always correct; a higher
	// value is safe too because SendUp/SendAcross/SendDown only ever
	// write into a *destination* AS's mutex-protected receive queue, and
	// ProcessReceived only ever writes into the calling AS's own RIB.
	Parallelism int
}

// NewASGraph returns an empty graph with sequential (single-threaded)
// phase execution.
func NewASGraph() *ASGraph {
	return &ASGraph{nodes: make(map[int]*ASNode)}
}

// Nodes exposes every AS currently in the graph. The returned map must not
// be mutated by callers.
func (g *ASGraph) Nodes() map[int]*ASNode { return g.nodes }

// Ranks exposes the rank buckets computed by ComputeRanks (nil before it
// has been called).
func (g *ASGraph) Ranks() [][]*ASNode { return g.ranks }

// GetOrCreate returns the existing node for asn, or creates one bound to a
// fresh default BGPPolicy.
func (g *ASGraph) GetOrCreate(asn int) *ASNode {
	if n, ok := g.nodes[asn]; ok {
		return n
	}
	n := newASNode(asn)
	n.Policy = NewBGPPolicy(n)
	g.nodes[asn] = n
	return n
}

// dfsColor is the three-state coloring used by DetectCyclesAndPrintIfAny.
type dfsColor int

const (
	unseen dfsColor = iota
	onStack
	done
)

// DetectCyclesAndPrintIfAny runs a DFS over the provider edges of every AS
// looking for a back-edge. It prints a diagnostic and returns true on the
// first cycle found; returns false if the provider relation is acyclic.
// Traversal order over nodes is not deterministic, but every node is
// covered.
func (g *ASGraph) DetectCyclesAndPrintIfAny() bool {
	color := make(map[int]dfsColor, len(g.nodes))

	var visit func(n *ASNode) bool
	visit = func(n *ASNode) bool {
		switch color[n.Asn] {
		case done:
			return false
		case onStack:
			return true // back-edge: cycle
		}
		color[n.Asn] = onStack
		for _, p := range n.Providers {
			if visit(p) {
				return true
			}
		}
		color[n.Asn] = done
		return false
	}

	for _, n := range g.nodes {
		if color[n.Asn] == unseen {
			if visit(n) {
				log.Println("Cycle detected in AS graph")
				return true
			}
		}
	}
	return false
}

// ComputeRanks performs a Kahn-style layering of the customer->provider
// DAG, rooted at leaves (ASes with no customers). rank(p) ends up as the
// length of the longest customer-chain from a leaf to p. Must only be
// called on an acyclic provider relation (see DetectCyclesAndPrintIfAny).
func (g *ASGraph) ComputeRanks() {
	remaining := make(map[int]int, len(g.nodes))
	for asn, n := range g.nodes {
		remaining[asn] = len(n.Customers)
	}

	queue := make([]*ASNode, 0, len(g.nodes))
	for _, n := range g.nodes {
		if remaining[n.Asn] == 0 {
			n.Rank = 0
			queue = append(queue, n)
		}
	}

	maxRank := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range cur.Providers {
			remaining[p.Asn]--
			if remaining[p.Asn] == 0 {
				p.Rank = cur.Rank + 1
				if p.Rank > maxRank {
					maxRank = p.Rank
				}
				queue = append(queue, p)
			}
		}
	}

	ranks := make([][]*ASNode, maxRank+1)
	for _, n := range g.nodes {
		ranks[n.Rank] = append(ranks[n.Rank], n)
	}
	g.ranks = ranks
}

// forEachNode runs fn over nodes, either sequentially or fanned out across
// g.Parallelism workers via pool.Launch_pool. Each fn invocation must only
// write to state privately owned by its node (its own RIB, or a
// destination node's mutex-protected queue) so that concurrent invocations
// never race.
func (g *ASGraph) forEachNode(nodes []*ASNode, fn func(*ASNode)) {
	if len(nodes) == 0 {
		return
	}
	if g.Parallelism <= 1 {
		for _, n := range nodes {
			fn(n)
		}
		return
	}

	byAsn := make(map[string]*ASNode, len(nodes))
	items := make([]string, 0, len(nodes))
	for _, n := range nodes {
		key := strconv.Itoa(n.Asn)
		byAsn[key] = n
		items = append(items, key)
	}
	pool.Launch_pool(g.Parallelism, items, func(key string) {
		fn(byAsn[key])
	})
}

func (g *ASGraph) allNodes() []*ASNode {
	all := make([]*ASNode, 0, len(g.nodes))
	for _, n := range g.nodes {
		all = append(all, n)
	}
	return all
}

func (g *ASGraph) processReceivedAll() {
	g.forEachNode(g.allNodes(), func(n *ASNode) { n.Policy.ProcessReceived() })
}

// PropagateUp: every AS, rank level by ascending rank, sends to its
// providers; then every AS processes what it received.
func (g *ASGraph) PropagateUp() {
	for _, level := range g.ranks {
		g.forEachNode(level, func(n *ASNode) { n.Policy.SendUp() })
	}
	g.processReceivedAll()
}

// PropagateAcross: every AS sends to its peers (rank order is immaterial);
// then every AS processes what it received.
func (g *ASGraph) PropagateAcross() {
	g.forEachNode(g.allNodes(), func(n *ASNode) { n.Policy.SendAcross() })
	g.processReceivedAll()
}

// PropagateDown: every AS, rank level by descending rank, sends to its
// customers; then every AS processes what it received.
func (g *ASGraph) PropagateDown() {
	for i := len(g.ranks) - 1; i >= 0; i-- {
		level := g.ranks[i]
		g.forEachNode(level, func(n *ASNode) { n.Policy.SendDown() })
	}
	g.processReceivedAll()
}
