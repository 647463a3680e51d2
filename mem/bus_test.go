package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestBus() *Bus {
	return NewBus(&InterruptController{})
}

func TestRomWritesIgnored(t *testing.T) {
	b := newTestBus()
	b.LoadROM([]byte{0x01, 0x02, 0x03})
	b.Write8(0x0000, 0xFF)
	assert.Equal(t, byte(0x01), b.Read8(0x0000))
}

func TestVramPlainReadWrite(t *testing.T) {
	b := newTestBus()
	b.Write8(0x8100, 0x42)
	assert.Equal(t, byte(0x42), b.Read8(0x8100))
}

func TestEchoMirrorsWram(t *testing.T) {
	b := newTestBus()
	b.Write8(0xC010, 0x99)
	assert.Equal(t, byte(0x99), b.Read8(0xE010))

	b.Write8(0xE020, 0x55)
	assert.Equal(t, byte(0x55), b.Read8(0xC020))
}

func TestUnusedRegionReadsFF(t *testing.T) {
	b := newTestBus()
	b.Write8(0xFEA5, 0x11)
	assert.Equal(t, byte(0xFF), b.Read8(0xFEA5))
}

func TestIfRegisterRoutesToController(t *testing.T) {
	irq := &InterruptController{}
	b := NewBus(irq)
	b.Write8(0xFF0F, 0x1F)
	assert.Equal(t, byte(0x1F), irq.IF())
	assert.Equal(t, byte(0x1F), b.Read8(0xFF0F))
}

func TestIeRegisterRoutesToController(t *testing.T) {
	irq := &InterruptController{}
	b := NewBus(irq)
	b.Write8(0xFFFF, 0x1F)
	assert.Equal(t, byte(0x1F), irq.IE())
	assert.Equal(t, byte(0x1F), b.Read8(0xFFFF))
}

func TestRead16Write16LittleEndian(t *testing.T) {
	b := newTestBus()
	b.Write16(0xC000, 0xBEEF)
	assert.Equal(t, byte(0xEF), b.Read8(0xC000))
	assert.Equal(t, byte(0xBE), b.Read8(0xC001))
	assert.Equal(t, uint16(0xBEEF), b.Read16(0xC000))
}

func TestJoypadRoundTrip(t *testing.T) {
	b := newTestBus()
	b.SetJoypad(0x0F)
	assert.Equal(t, byte(0x0F), b.Joypad())
	assert.Equal(t, byte(0x0F), b.Read8(0xFF00))
}

func TestJoypadWriteViaBusMatchesSetJoypad(t *testing.T) {
	b := newTestBus()
	b.Write8(0xFF00, 0x3C)
	assert.Equal(t, byte(0x3C), b.Joypad())
}
