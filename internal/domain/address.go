// Package domain holds the IPv4 address and network model.
package domain

import "fmt"

// Address is a single IPv4 address as a 32-bit unsigned value.
type Address uint32

// String renders the address in dotted decimal notation.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a>>24&0xFF, a>>16&0xFF, a>>8&0xFF, a&0xFF)
}

// Binary renders the address as a 32-character binary string.
func (a Address) Binary() string {
	return fmt.Sprintf("%032b", uint32(a))
}

// Debug renders the binary and dotted decimal forms side by side.
func (a Address) Debug() string {
	return fmt.Sprintf("%s - %15s", a.Binary(), a.String())
}
