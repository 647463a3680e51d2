package mem

import (
	"sync/atomic"

	"gonebody/mask"
)

// A Bus connects the CPU to the 64 KiB logical address space. It routes
// each access through a fixed table of region modules registered once at
// construction (see newRegionTable); no region is added lazily, and the
// interrupt controller owns its two flag bytes directly rather than being
// just another region, which keeps the bus/region/controller ownership
// acyclic.
type Bus struct {
	ram     [65536]byte
	regions []region
	irq     *InterruptController

	// joypad backs the 0xFF00 byte with an atomic rather than a plain
	// ram slot: the host's input thread writes it concurrently with the
	// stepper goroutine reading it, the one exception to the rule that
	// only the stepper mutates CPU-visible state.
	joypad atomic.Uint32
}

// NewBus constructs a Bus wired to the given interrupt controller. irq must
// not be nil: every Bus needs somewhere to route 0xFF0F/0xFFFF.
func NewBus(irq *InterruptController) *Bus {
	return &Bus{
		regions: newRegionTable(),
		irq:     irq,
	}
}

// LoadROM copies data into the ROM region starting at 0x0000. Bytes beyond
// the ROM region's end are dropped; cartridge.Load is responsible for
// rejecting ROMs that don't fit the no-MBC model this core supports.
func (b *Bus) LoadROM(data []byte) {
	copy(b.ram[romStart:romEnd+1], data)
}

func (b *Bus) region(addr uint16) region {
	for _, r := range b.regions {
		if r.contains(addr) {
			return r
		}
	}
	// Every address in a uint16 space is covered by newRegionTable; this is
	// unreachable, not a real fallback.
	panic("mem: address not covered by any region")
}

// Read8 reads one byte at addr.
func (b *Bus) Read8(addr uint16) byte {
	return b.region(addr).read(b, addr)
}

// Write8 writes one byte at addr.
func (b *Bus) Write8(addr uint16, v byte) {
	b.region(addr).write(b, addr, v)
}

// Read16 reads a little-endian 16-bit value: low byte at addr, high byte at
// addr+1. Implemented as exactly two Read8 calls, low byte first.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return mask.Word(hi, lo)
}

// Write16 writes a little-endian 16-bit value: low byte at addr, high byte
// at addr+1. Implemented as exactly two Write8 calls, low byte first.
func (b *Bus) Write16(addr uint16, v uint16) {
	hi, lo := mask.Split(v)
	b.Write8(addr, lo)
	b.Write8(addr+1, hi)
}

// Joypad returns the current joypad byte at 0xFF00, as last written by the
// input collaborator or the CPU itself. Backed by an atomic load since the
// input collaborator calls SetJoypad from outside the stepper goroutine.
func (b *Bus) Joypad() byte { return byte(b.joypad.Load()) }

// SetJoypad stores m into the joypad byte at 0xFF00 with a relaxed atomic
// store: the CPU only ever observes it at an opcode boundary, so nothing
// stronger is needed. Called by the host's input collaborator; see
// input.Controller.
func (b *Bus) SetJoypad(m byte) { b.joypad.Store(uint32(m)) }

// VRAM returns a read-only snapshot of video RAM (0x8000-0x9FFF), for the
// (out-of-scope) graphics collaborator to scan between steps.
func (b *Bus) VRAM() [vramEnd - vramStart + 1]byte {
	var snap [vramEnd - vramStart + 1]byte
	copy(snap[:], b.ram[vramStart:vramEnd+1])
	return snap
}

// Interrupts exposes the bus's interrupt controller for the executor's
// dispatch logic.
func (b *Bus) Interrupts() *InterruptController { return b.irq }
