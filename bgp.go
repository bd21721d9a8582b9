package bgpsim

import "sync"

// BGPPolicy is the default per-AS policy: plain Gao-Rexford export rules, a
// strict total preference order, and no ingress filtering. ROVPolicy
// composes on top of it.
//
// The local RIB is a plain map keyed by the opaque prefix string: prefixes
// are treated as exact-match keys only, never as a longest-match lookup, so
// an ordinary map is the right associative container here. See DESIGN.md
// for why github.com/Emeline-1/radix was tried and dropped for this role.
type BGPPolicy struct {
	owner *ASNode

	ribMu    sync.Mutex
	localRib map[string]Announcement

	queueMu       sync.Mutex
	receivedQueue map[string][]queuedAnnouncement
}

type queuedAnnouncement struct {
	ann Announcement
	rel Relationship
}

// NewBGPPolicy builds a default policy bound to owner.
func NewBGPPolicy(owner *ASNode) *BGPPolicy {
	return &BGPPolicy{
		owner:         owner,
		localRib:      make(map[string]Announcement),
		receivedQueue: make(map[string][]queuedAnnouncement),
	}
}

func (p *BGPPolicy) GetOwner() *ASNode { return p.owner }

// isBetter is the strict total preference order used to pick the best route
// for a prefix: higher relationship ordinal wins, then shorter AS path, then
// lower next-hop ASN.
func isBetter(a, b Announcement) bool {
	if a.Rel != b.Rel {
		return a.Rel > b.Rel
	}
	if len(a.AsPath) != len(b.AsPath) {
		return len(a.AsPath) < len(b.AsPath)
	}
	return a.NextHopAsn < b.NextHopAsn
}

// Receive enqueues (ann, rel) for prefix. It never touches the RIB.
func (p *BGPPolicy) Receive(prefix string, ann Announcement, rel Relationship) {
	p.queueMu.Lock()
	p.receivedQueue[prefix] = append(p.receivedQueue[prefix], queuedAnnouncement{ann: ann, rel: rel})
	p.queueMu.Unlock()
}

// ProcessReceived drains the queue, applies selection, and installs winners
// into the local RIB. The order prefixes are processed in is irrelevant;
// within one prefix, ties are resolved by isBetter and, where isBetter sees
// two candidates as equal (both carry this AS as next hop), by the lower
// ASN of the neighbor they came from -- never by arrival order.
func (p *BGPPolicy) ProcessReceived() {
	p.queueMu.Lock()
	queue := p.receivedQueue
	p.receivedQueue = make(map[string][]queuedAnnouncement)
	p.queueMu.Unlock()

	if len(queue) == 0 {
		return
	}

	p.ribMu.Lock()
	defer p.ribMu.Unlock()

	for prefix, entries := range queue {
		for _, qe := range entries {
			// Loop prevention: never accept a learned route that already
			// carries our own ASN anywhere in its path. Self-originated
			// routes start with our own ASN and are exempt.
			if qe.rel != Origin && qe.ann.containsAsn(p.owner.Asn) {
				continue
			}

			cand := qe.ann
			if qe.rel != Origin {
				cand = cand.withPrependedHop(p.owner.Asn)
			}
			cand.Rel = qe.rel
			cand.NextHopAsn = p.owner.Asn

			existing, ok := p.localRib[prefix]
			switch {
			case !ok, isBetter(cand, existing):
				p.localRib[prefix] = cand
			case !isBetter(existing, cand) && len(cand.AsPath) > 1 && len(existing.AsPath) > 1 &&
				cand.AsPath[1] < existing.AsPath[1]:
				// AsPath[1] is the neighbor the route was learned from.
				p.localRib[prefix] = cand
			}
		}
	}
}

// exportAllowed implements the Gao-Rexford export rule: routes learned from
// a customer (or self-originated) may be exported to anyone; routes learned
// from a peer or a provider may only be exported to customers.
func exportAllowed(learnedFrom Relationship, to Relationship) bool {
	if to == Customer {
		return true
	}
	return learnedFrom == Customer || learnedFrom == Origin
}

func (p *BGPPolicy) forEachExportable(to Relationship, fn func(prefix string, best Announcement)) {
	p.ribMu.Lock()
	type entry struct {
		prefix string
		best   Announcement
	}
	snapshot := make([]entry, 0, len(p.localRib))
	for prefix, best := range p.localRib {
		if exportAllowed(best.Rel, to) {
			snapshot = append(snapshot, entry{prefix: prefix, best: best})
		}
	}
	p.ribMu.Unlock()

	for _, e := range snapshot {
		fn(e.prefix, e.best)
	}
}

// SendUp delivers exportable RIB entries to every provider; the receiver
// learns the route as a CUSTOMER route (we are its customer).
func (p *BGPPolicy) SendUp() {
	p.forEachExportable(Provider, func(prefix string, best Announcement) {
		ann := best
		ann.NextHopAsn = p.owner.Asn
		for _, prov := range p.owner.Providers {
			prov.Policy.Receive(prefix, ann, Customer)
		}
	})
}

// SendAcross delivers exportable RIB entries to every peer; the receiver
// learns the route as a PEER route.
func (p *BGPPolicy) SendAcross() {
	p.forEachExportable(Peer, func(prefix string, best Announcement) {
		ann := best
		ann.NextHopAsn = p.owner.Asn
		for _, peer := range p.owner.Peers {
			peer.Policy.Receive(prefix, ann, Peer)
		}
	})
}

// SendDown delivers exportable RIB entries to every customer; the receiver
// learns the route as a PROVIDER route.
func (p *BGPPolicy) SendDown() {
	p.forEachExportable(Customer, func(prefix string, best Announcement) {
		ann := best
		ann.NextHopAsn = p.owner.Asn
		for _, cust := range p.owner.Customers {
			cust.Policy.Receive(prefix, ann, Provider)
		}
	})
}

// DumpRibToCsvRows appends one row per RIB entry, in map iteration order;
// collectRibRows (io_writer.go) performs the final (asn, prefix) sort across
// every AS, so this ordering is never relied on for correctness.
func (p *BGPPolicy) DumpRibToCsvRows(rows []RibRow) []RibRow {
	p.ribMu.Lock()
	defer p.ribMu.Unlock()
	for prefix, ann := range p.localRib {
		rows = append(rows, RibRow{Asn: p.owner.Asn, Prefix: prefix, AsPath: ann.AsPathString()})
	}
	return rows
}
