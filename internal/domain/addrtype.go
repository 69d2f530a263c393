package domain

// AddressKind is the role an address plays within its network.
type AddressKind int

const (
	// KindNetwork is the network base address itself.
	KindNetwork AddressKind = iota
	// KindSubnet is a subnet base address.
	KindSubnet
	// KindHost is a usable host address.
	KindHost
	// KindSubnetBroadcast is the last address of one subnet.
	KindSubnetBroadcast
	// KindNetworkBroadcast is the last address of the whole network.
	KindNetworkBroadcast
)

// AddressType is an address annotated with its role. Class is set only
// on the KindNetwork element.
type AddressType struct {
	Kind    AddressKind
	Address Address
	Class   Class
}

// String renders the role label. The network element is labeled with
// its class.
func (t AddressType) String() string {
	switch t.Kind {
	case KindNetwork:
		return t.Class.String()
	case KindSubnet:
		return "subnet"
	case KindHost:
		return "host"
	case KindSubnetBroadcast:
		return "subnet broadcast"
	case KindNetworkBroadcast:
		return "network broadcast"
	default:
		return "unknown address type"
	}
}
