package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSubnetMask is returned when the subnet mask length is
	// outside [0, 32].
	ErrInvalidSubnetMask = errors.New("subnet mask was invalid")

	// ErrInvalidAddress is returned for malformed CIDR text.
	ErrInvalidAddress = errors.New("network address was invalid")
)

// ReservedAddressError is returned when the supplied base address
// falls in a reserved block. Kind reports which block matched.
type ReservedAddressError struct {
	Kind ReservedAddress
}

func (e *ReservedAddressError) Error() string {
	return fmt.Sprintf("reserved address cannot be used as a network: %s", e.Kind)
}
