package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		network string
		want    Class
	}{
		{"125.0.0.0/0", ClassA},
		{"128.122.0.0/0", ClassB},
		{"192.168.147.0/0", ClassC},
		{"224.12.98.255/0", ClassD},
		{"255.255.255.254/32", ClassE},
	}

	for _, tt := range tests {
		network, err := ParseCIDR(tt.network)
		require.NoError(t, err, "network %s", tt.network)
		assert.Equal(t, tt.want, network.Class(), "network %s", tt.network)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Walk every possible first octet; the leading bits alone decide
	// the class.
	for first := 0; first <= 255; first++ {
		address := uint32(first) << 24

		var want Class
		switch {
		case first < 128:
			want = ClassA
		case first < 192:
			want = ClassB
		case first < 224:
			want = ClassC
		case first < 240:
			want = ClassD
		default:
			want = ClassE
		}

		assert.Equal(t, want, Classify(address), "first octet %d", first)
	}
}

func TestNetworkBits(t *testing.T) {
	tests := []struct {
		class Class
		bits  uint8
		ok    bool
	}{
		{ClassA, 8, true},
		{ClassB, 16, true},
		{ClassC, 24, true},
		{ClassD, 0, false},
		{ClassE, 0, false},
	}

	for _, tt := range tests {
		bits, ok := tt.class.NetworkBits()
		assert.Equal(t, tt.ok, ok, "class %s", tt.class)
		assert.Equal(t, tt.bits, bits, "class %s", tt.class)
	}
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "class A network", ClassA.String())
	assert.Equal(t, "class E network", ClassE.String())
}
