package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectReserved(t *testing.T) {
	tests := []struct {
		name    string
		address uint32
		kind    ReservedAddress
		ok      bool
	}{
		{"loopback base", 0x7F000000, Loopback, true},
		{"loopback host", 0x7F000001, Loopback, true},
		{"loopback top", 0x7FFFFFFF, Loopback, true},
		{"local broadcast", 0xFFFFFFFF, LocalBroadcast, true},
		{"plain class C", 0xC0A89300, 0, false},
		{"below loopback", 0x7E000000, 0, false},
		{"above loopback", 0x80000000, 0, false},
		{"almost broadcast", 0xFFFFFFFE, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := DetectReserved(tt.address)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.kind, kind)
			}
		})
	}
}

func TestReservedAddressString(t *testing.T) {
	assert.Equal(t, "loopback", Loopback.String())
	assert.Equal(t, "local broadcast", LocalBroadcast.String())
}
