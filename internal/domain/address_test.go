package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressString(t *testing.T) {
	assert.Equal(t, "192.168.147.16", Address(0xC0A89310).String())
	assert.Equal(t, "0.0.0.0", Address(0).String())
	assert.Equal(t, "255.255.255.255", Address(0xFFFFFFFF).String())
}

func TestAddressBinary(t *testing.T) {
	assert.Equal(t, "11000000101010001001001100000000", Address(0xC0A89300).Binary())
	assert.Equal(t, "00000000000000000000000000000000", Address(0).Binary())
}

func TestAddressDebug(t *testing.T) {
	assert.Equal(t,
		"11000000101010001001001100000000 -   192.168.147.0",
		Address(0xC0A89300).Debug())
}
