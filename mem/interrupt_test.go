package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingRequiresEnableAndPending(t *testing.T) {
	irq := &InterruptController{}
	assert.False(t, irq.Pending())

	irq.Request(VBlank)
	assert.False(t, irq.Pending(), "pending but not enabled")

	irq.SetIE(0x1F)
	assert.True(t, irq.Pending())
}

func TestClaimPicksLowestNumberedSource(t *testing.T) {
	irq := &InterruptController{}
	irq.SetIE(0x1F)
	irq.Request(Timer)
	irq.Request(VBlank)

	source, vector, ok := irq.Claim()
	assert.True(t, ok)
	assert.Equal(t, VBlank, source)
	assert.Equal(t, uint16(0x0040), vector)
	assert.Equal(t, byte(1<<Timer), irq.IF(), "VBlank bit cleared, Timer still pending")
}

func TestClaimFalseWhenNothingPending(t *testing.T) {
	irq := &InterruptController{}
	irq.SetIE(0x1F)
	_, _, ok := irq.Claim()
	assert.False(t, ok)
}

func TestClaimRespectsDisabledSources(t *testing.T) {
	irq := &InterruptController{}
	irq.SetIE(1 << Joypad)
	irq.Request(VBlank)
	irq.Request(Joypad)

	source, vector, ok := irq.Claim()
	assert.True(t, ok)
	assert.Equal(t, Joypad, source)
	assert.Equal(t, uint16(0x0060), vector)
}
