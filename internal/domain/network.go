package domain

import (
	"fmt"
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// Network is an IPv4 network given by its base address and subnet mask
// length. The base address is kept exactly as supplied; it is not
// normalized against the subnet mask. A Network is immutable and only
// exists fully validated.
type Network struct {
	address       uint32
	subnetMaskLen uint8
}

// NewNetwork builds a network from four dotted decimal parts and a
// subnet mask length. Reserved base addresses are rejected.
func NewNetwork(a, b, c, d, subnetMaskLen uint8) (Network, error) {
	if subnetMaskLen > 32 {
		return Network{}, ErrInvalidSubnetMask
	}

	address := uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d)

	if kind, ok := DetectReserved(address); ok {
		return Network{}, &ReservedAddressError{Kind: kind}
	}

	return Network{address: address, subnetMaskLen: subnetMaskLen}, nil
}

// ParseCIDR parses "A.B.C.D/len" notation, e.g. "192.168.147.0/28".
// Any syntactic failure reports ErrInvalidAddress; semantic checks are
// left to NewNetwork.
func ParseCIDR(s string) (Network, error) {
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return Network{}, ErrInvalidAddress
	}

	tokens := strings.Split(parts[0], ".")
	if len(tokens) != 4 {
		return Network{}, ErrInvalidAddress
	}

	var octets [4]uint8
	for i, token := range tokens {
		v, err := strconv.ParseUint(token, 10, 8)
		if err != nil {
			return Network{}, ErrInvalidAddress
		}
		octets[i] = uint8(v)
	}

	maskLen, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Network{}, ErrInvalidAddress
	}

	return NewNetwork(octets[0], octets[1], octets[2], octets[3], uint8(maskLen))
}

// Class returns the historical class of the base address.
func (n Network) Class() Class {
	return Classify(n.address)
}

// NetMask returns the class-implied network mask. Classes D and E have
// no class-implied network boundary.
func (n Network) NetMask() (uint32, bool) {
	networkBits, ok := n.Class().NetworkBits()
	if !ok {
		return 0, false
	}
	return ^uint32(0) << (32 - networkBits), true
}

// SubnetMask returns the mask with the top subnet-mask-length bits
// set.
func (n Network) SubnetMask() uint32 {
	if n.subnetMaskLen == 0 {
		return 0
	}
	return ^uint32(0) << (32 - n.subnetMaskLen)
}

// NumSubnets returns the number of usable subnets. The all-zero and
// all-one subnet patterns are excluded per the classic convention.
// Undefined for classes D and E; zero when no subnetting is
// configured.
func (n Network) NumSubnets() (uint32, bool) {
	netMask, ok := n.NetMask()
	if !ok {
		return 0, false
	}

	subnetMask := n.SubnetMask()
	if subnetMask == 0 {
		return 0, true
	}

	// The xor isolates the bits borrowed from the host part for
	// subnetting; the shift normalizes them to an integer count.
	return ((netMask ^ subnetMask) >> bits.OnesCount32(^subnetMask)) - 1, true
}

// NumHostsPerSubnet returns the usable host count within one subnet.
// Masks longer than /30 leave fewer than two host bits and count zero.
// With no subnetting configured the count covers the whole class block
// minus its broadcast address.
func (n Network) NumHostsPerSubnet() uint32 {
	switch {
	case n.subnetMaskLen > 30:
		return 0
	case n.subnetMaskLen == 0:
		netMask, ok := n.NetMask()
		if !ok {
			netMask = n.Class().mask()
		}
		return ^netMask - 1
	default:
		return (^uint32(0) >> n.subnetMaskLen) - 1
	}
}

// Subnets returns a lazy sequence of the usable subnet base addresses
// in ascending order. Every call yields a fresh, independently
// iterable sequence; it is empty when NumSubnets is zero or undefined.
func (n Network) Subnets() iter.Seq[Address] {
	count, ok := n.NumSubnets()
	if !ok {
		count = 0
	}
	shift := 32 - n.subnetMaskLen

	return func(yield func(Address) bool) {
		for i := uint32(1); i <= count; i++ {
			if !yield(Address(n.address | i<<shift)) {
				return
			}
		}
	}
}

// Addresses returns a lazy sequence classifying every address in the
// network: the network element first, then every subnet, host and
// subnet broadcast address in ascending order, and the network
// broadcast last. Classes D and E yield only the network element.
func (n Network) Addresses() iter.Seq[AddressType] {
	return func(yield func(AddressType) bool) {
		if !yield(AddressType{Kind: KindNetwork, Address: Address(n.address), Class: n.Class()}) {
			return
		}

		netMask, ok := n.NetMask()
		if !ok {
			return
		}
		subnetMask := n.SubnetMask()

		// Addresses strictly between the network base and the network
		// broadcast.
		numAddresses := ^netMask - 2*^subnetMask

		for i := uint32(1); i < numAddresses; i++ {
			addr := n.address + ^subnetMask + i

			at := AddressType{Kind: KindHost, Address: Address(addr)}
			switch {
			case addr|subnetMask == ^uint32(0):
				// All host bits set within its subnet. Checked before
				// the subnet pattern so a degenerate single-host
				// subnet reads as its own broadcast.
				at.Kind = KindSubnetBroadcast
			case ^addr|subnetMask == ^uint32(0):
				// All host bits zero: a subnet base address.
				at.Kind = KindSubnet
			}

			if !yield(at) {
				return
			}
		}

		yield(AddressType{Kind: KindNetworkBroadcast, Address: Address(n.address | ^netMask)})
	}
}

// String renders the human-readable summary block: the class line, the
// subnet count and the hosts-per-subnet count. Both counts read N/A
// when the class has no subnetting concept.
func (n Network) String() string {
	subnets := "N/A"
	hosts := "N/A"
	if count, ok := n.NumSubnets(); ok {
		subnets = strconv.FormatUint(uint64(count), 10)
		hosts = strconv.FormatUint(uint64(n.NumHostsPerSubnet()), 10)
	}

	return fmt.Sprintf("%s\nSubnets:      %s\nHosts/subnet: %s", n.Class(), subnets, hosts)
}
