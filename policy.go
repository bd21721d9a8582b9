package bgpsim

// Policy is the capability set every per-AS routing policy implements: a
// plain BGP policy, or a BGP policy fronted by an ROV ingress filter. A
// Policy is bound to exactly one owning ASNode for its whole lifetime.
type Policy interface {
	// Receive enqueues an incoming announcement learned under rel. It must
	// never touch the local RIB directly -- selection happens later, in
	// ProcessReceived.
	Receive(prefix string, ann Announcement, rel Relationship)

	// ProcessReceived drains the receive queue, applies selection, and
	// updates the local RIB. Safe to call on an empty queue.
	ProcessReceived()

	// SendUp, SendAcross and SendDown deliver the current RIB's exportable
	// entries to providers, peers and customers respectively.
	SendUp()
	SendAcross()
	SendDown()

	// DumpRibToCsvRows appends one (asn, prefix, as_path_string) row per
	// RIB entry to rows, returning the extended slice.
	DumpRibToCsvRows(rows []RibRow) []RibRow

	// GetOwner identifies the AS this policy is bound to.
	GetOwner() *ASNode
}

// RibRow is one row of the eventual RIB CSV: (asn, prefix, as_path_string).
type RibRow struct {
	Asn    int
	Prefix string
	AsPath string
}
