package domain

// Class is one of the five historical IPv4 network classes.
type Class int

const (
	// ClassA networks are N.H.H.H.
	ClassA Class = iota
	// ClassB networks are N.N.H.H.
	ClassB
	// ClassC networks are N.N.N.H.
	ClassC
	// ClassD is the multicast block.
	ClassD
	// ClassE is reserved use.
	ClassE
)

// classPatterns maps each class to its fixed leading bit pattern,
// ordered longest pattern first. D and E overlap in their top four
// bits, so the order matters. Class A's pattern is a single zero bit
// and catches everything left over, which makes Classify total.
var classPatterns = []struct {
	class   Class
	mask    uint32
	pattern uint32
}{
	{ClassE, 0b11110000_00000000_00000000_00000000, 0b11110000_00000000_00000000_00000000},
	{ClassD, 0b11110000_00000000_00000000_00000000, 0b11100000_00000000_00000000_00000000},
	{ClassC, 0b11100000_00000000_00000000_00000000, 0b11000000_00000000_00000000_00000000},
	{ClassB, 0b11000000_00000000_00000000_00000000, 0b10000000_00000000_00000000_00000000},
	{ClassA, 0b10000000_00000000_00000000_00000000, 0b00000000_00000000_00000000_00000000},
}

// Classify maps a 32-bit address to its network class. Every address
// matches exactly one class; classification never fails.
func Classify(address uint32) Class {
	for _, p := range classPatterns {
		if address&p.mask == p.pattern {
			return p.class
		}
	}
	// Unreachable, class A matches every address not claimed above.
	return ClassA
}

// NetworkBits returns the class-implied network length in bits.
// Classes D and E have no network/host split.
func (c Class) NetworkBits() (uint8, bool) {
	switch c {
	case ClassA:
		return 8, true
	case ClassB:
		return 16, true
	case ClassC:
		return 24, true
	default:
		return 0, false
	}
}

// mask returns the leading bit mask identifying the class.
func (c Class) mask() uint32 {
	for _, p := range classPatterns {
		if p.class == c {
			return p.mask
		}
	}
	return 0
}

// String renders the class the way the summary and address listings
// label it.
func (c Class) String() string {
	switch c {
	case ClassA:
		return "class A network"
	case ClassB:
		return "class B network"
	case ClassC:
		return "class C network"
	case ClassD:
		return "class D network"
	case ClassE:
		return "class E network"
	default:
		return "unknown network class"
	}
}
