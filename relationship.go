package bgpsim

// Relationship records how an AS learned an Announcement (or that it
// originated it). The ordinal values double as the preference order used
// by isBetter: a higher ordinal always beats a lower one.
type Relationship int

const (
	Provider Relationship = iota // 0: learned from a provider
	Peer                         // 1: learned from a peer
	Customer                     // 2: learned from a customer
	Origin                       // 3: self-originated
)

func (r Relationship) String() string {
	switch r {
	case Origin:
		return "ORIGIN"
	case Customer:
		return "CUSTOMER"
	case Peer:
		return "PEER"
	case Provider:
		return "PROVIDER"
	default:
		return "UNKNOWN"
	}
}
