package bgpsim

// ROVPolicy is a BGPPolicy with a Route Origin Validation ingress filter:
// an announcement flagged rov_invalid at seeding time is dropped on
// Receive and never reaches the queue. Every other behavior -- selection,
// export, dump -- is inherited unchanged from BGPPolicy.
type ROVPolicy struct {
	*BGPPolicy
}

// NewROVPolicy builds an ROV-aware policy bound to owner.
func NewROVPolicy(owner *ASNode) *ROVPolicy {
	return &ROVPolicy{BGPPolicy: NewBGPPolicy(owner)}
}

// Receive drops ann outright when it is marked ROV-invalid; otherwise it
// delegates to BGPPolicy.Receive unchanged.
func (p *ROVPolicy) Receive(prefix string, ann Announcement, rel Relationship) {
	if ann.RovInvalid {
		return
	}
	p.BGPPolicy.Receive(prefix, ann, rel)
}
