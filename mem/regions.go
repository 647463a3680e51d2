package mem

// Region boundaries of the 64 KiB address space.
const (
	romStart    = 0x0000
	romEnd      = 0x7FFF
	vramStart   = 0x8000
	vramEnd     = 0x9FFF
	eramStart   = 0xA000
	eramEnd     = 0xBFFF
	wramStart   = 0xC000
	wramEnd     = 0xDFFF
	echoStart   = 0xE000
	echoEnd     = 0xFDFF
	oamStart    = 0xFE00
	oamEnd      = 0xFE9F
	unusedStart = 0xFEA0
	unusedEnd   = 0xFEFF
	ioStart     = 0xFF00
	ioEnd       = 0xFF7F
	hramStart   = 0xFF80
	hramEnd     = 0xFFFE
	ieAddr      = 0xFFFF
	ifAddr      = 0xFF0F
	joypadAddr  = 0xFF00
)

// region is a contiguous slice of the address space with its own read/write
// behavior. Regions are registered against the Bus once at construction
// time (see newRegionTable), never added lazily.
type region struct {
	start, end uint16
	read       func(b *Bus, addr uint16) byte
	write      func(b *Bus, addr uint16, v byte)
}

func (r region) contains(addr uint16) bool { return addr >= r.start && addr <= r.end }

// newRegionTable builds the fixed set of region handlers this core needs.
// Order matters only in that the first matching region wins; the ranges
// are disjoint so there is no real ambiguity.
func newRegionTable() []region {
	return []region{
		{
			start: romStart, end: romEnd,
			read:  func(b *Bus, addr uint16) byte { return b.ram[addr] },
			write: func(b *Bus, addr uint16, v byte) { /* ROM: writes silently ignored */ },
		},
		{
			start: vramStart, end: vramEnd,
			read:  func(b *Bus, addr uint16) byte { return b.ram[addr] },
			write: func(b *Bus, addr uint16, v byte) { b.ram[addr] = v },
		},
		{
			start: eramStart, end: eramEnd,
			read:  func(b *Bus, addr uint16) byte { return b.ram[addr] },
			write: func(b *Bus, addr uint16, v byte) { b.ram[addr] = v },
		},
		{
			start: wramStart, end: wramEnd,
			read:  func(b *Bus, addr uint16) byte { return b.ram[addr] },
			write: func(b *Bus, addr uint16, v byte) { b.ram[addr] = v },
		},
		{
			// Echo RAM: every access is rewritten to the mirrored WRAM
			// address before dispatch.
			start: echoStart, end: echoEnd,
			read: func(b *Bus, addr uint16) byte {
				return b.ram[addr-echoStart+wramStart]
			},
			write: func(b *Bus, addr uint16, v byte) {
				b.ram[addr-echoStart+wramStart] = v
			},
		},
		{
			start: oamStart, end: oamEnd,
			read:  func(b *Bus, addr uint16) byte { return b.ram[addr] },
			write: func(b *Bus, addr uint16, v byte) { b.ram[addr] = v },
		},
		{
			// Unmapped between OAM and I/O: reads as 0xFF, writes vanish.
			start: unusedStart, end: unusedEnd,
			read:  func(b *Bus, addr uint16) byte { return 0xFF },
			write: func(b *Bus, addr uint16, v byte) {},
		},
		{
			start: ioStart, end: ioEnd,
			read: func(b *Bus, addr uint16) byte {
				switch addr {
				case ifAddr:
					return b.irq.IF()
				case joypadAddr:
					return b.Joypad()
				}
				return b.ram[addr]
			},
			write: func(b *Bus, addr uint16, v byte) {
				switch addr {
				case ifAddr:
					b.irq.SetIF(v)
					return
				case joypadAddr:
					b.SetJoypad(v)
					return
				}
				b.ram[addr] = v
			},
		},
		{
			start: hramStart, end: hramEnd,
			read:  func(b *Bus, addr uint16) byte { return b.ram[addr] },
			write: func(b *Bus, addr uint16, v byte) { b.ram[addr] = v },
		},
		{
			start: ieAddr, end: ieAddr,
			read:  func(b *Bus, addr uint16) byte { return b.irq.IE() },
			write: func(b *Bus, addr uint16, v byte) { b.irq.SetIE(v) },
		},
	}
}
