package domain

// ReservedAddress identifies an address block that may never be used
// as a network base address.
type ReservedAddress int

const (
	// Loopback is 127/8. The whole block is reserved, not just the
	// commonly used 127.0.0.1 address.
	Loopback ReservedAddress = iota
	// LocalBroadcast is 255.255.255.255/32.
	LocalBroadcast
)

// reservedPatterns is ordered most specific first so the exact local
// broadcast match is tried before the loopback prefix.
var reservedPatterns = []struct {
	kind    ReservedAddress
	mask    uint32
	pattern uint32
}{
	{LocalBroadcast, 0b11111111_11111111_11111111_11111111, 0b11111111_11111111_11111111_11111111},
	{Loopback, 0b11111111_00000000_00000000_00000000, 0b01111111_00000000_00000000_00000000},
}

// DetectReserved reports whether an address falls in a reserved block,
// and which one.
func DetectReserved(address uint32) (ReservedAddress, bool) {
	for _, p := range reservedPatterns {
		if address&p.mask == p.pattern {
			return p.kind, true
		}
	}
	return 0, false
}

func (r ReservedAddress) String() string {
	switch r {
	case Loopback:
		return "loopback"
	case LocalBroadcast:
		return "local broadcast"
	default:
		return "unknown reserved address"
	}
}
