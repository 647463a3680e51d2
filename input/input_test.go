package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeBus struct {
	last byte
	n    int
}

func (f *fakeBus) SetJoypad(m byte) {
	f.last = m
	f.n++
}

func TestHandleForwardsMaskVerbatim(t *testing.T) {
	bus := &fakeBus{}
	c := NewController(bus)

	c.Handle(A | Start)
	assert.Equal(t, byte(A|Start), bus.last)
	assert.Equal(t, 1, bus.n)
}

func TestHandleOverwritesPriorMask(t *testing.T) {
	bus := &fakeBus{}
	c := NewController(bus)

	c.Handle(Up | B)
	c.Handle(Down)
	assert.Equal(t, byte(Down), bus.last, "Handle takes full state, not a delta")
	assert.Equal(t, 2, bus.n)
}

func TestButtonBitsAreDistinct(t *testing.T) {
	bits := []byte{Right, Left, Up, Down, A, B, Select, Start}
	seen := byte(0)
	for _, b := range bits {
		assert.Zero(t, seen&b, "bit %08b overlaps an earlier button", b)
		seen |= b
	}
	assert.Equal(t, byte(0xFF), seen)
}
