package bgpsim

import "strconv"

// Announcement is an immutable route record carried between ASes. Replacing
// a RIB entry always installs a whole new Announcement; nothing mutates one
// in place once it has been handed to a receiver.
type Announcement struct {
	Prefix     string
	AsPath     []int // newest hop first; AsPath[0] is always the holder's own ASN once installed
	NextHopAsn int
	Rel        Relationship
	RovInvalid bool
}

// withPrependedHop returns a copy of ann with asn prepended to the AS path.
// Origin announcements are never prepended (the origin AS is already
// AsPath[0]).
func (ann Announcement) withPrependedHop(asn int) Announcement {
	path := make([]int, 0, len(ann.AsPath)+1)
	path = append(path, asn)
	path = append(path, ann.AsPath...)
	ann.AsPath = path
	return ann
}

// containsAsn reports whether asn already appears anywhere in the path,
// used to reject routes that would create a loop on ingest.
func (ann Announcement) containsAsn(asn int) bool {
	for _, hop := range ann.AsPath {
		if hop == asn {
			return true
		}
	}
	return false
}

// AsPathString renders the AS path the way the RIB CSV expects it:
// "(a, b, c)" for two or more hops, and "(a,)" -- note the trailing comma --
// for a single-AS path. No spaces follow the opening parenthesis or precede
// the closing one.
func (ann Announcement) AsPathString() string {
	if len(ann.AsPath) == 1 {
		return "(" + strconv.Itoa(ann.AsPath[0]) + ",)"
	}
	var b []byte
	b = append(b, '(')
	for i, asn := range ann.AsPath {
		if i > 0 {
			b = append(b, ',', ' ')
		}
		b = strconv.AppendInt(b, int64(asn), 10)
	}
	b = append(b, ')')
	return string(b)
}
