// Package cartridge loads a ROM image and parses its fixed-layout header:
// a raw byte slice plus the cartridge-type byte at 0x147, the title, and
// the size/checksum fields.
package cartridge

import "fmt"

// headerStart is where the fixed-layout ROM header begins; headerEnd is
// one past its last byte.
const (
	headerStart   = 0x0100
	headerEnd     = 0x0150
	titleStart    = 0x0134
	titleEnd      = 0x0144
	cartTypeAddr  = 0x0147
	romSizeAddr   = 0x0148
	ramSizeAddr   = 0x0149
	checksumAddr  = 0x014D
	resetVecStart = 0x0100
)

// Cartridge is a loaded ROM image plus its parsed header fields. Only
// cartridge type 0x00 (ROM ONLY, no mapper) is supported; there is no bank
// switching, so anything claiming a mapper is rejected at Load time rather
// than silently misbehaving later.
type Cartridge struct {
	Data     []byte
	Title    string
	CartType byte
	ROMSize  byte
	RAMSize  byte
	Checksum byte
}

// Load validates and parses rom. It requires at least a full header
// (0x150 bytes) and a cartridge-type byte of 0x00.
func Load(rom []byte) (*Cartridge, error) {
	if len(rom) < headerEnd {
		return nil, fmt.Errorf("cartridge: image too short to contain a header: %d bytes", len(rom))
	}
	cartType := rom[cartTypeAddr]
	if cartType != 0x00 {
		return nil, fmt.Errorf("cartridge: unsupported cartridge type 0x%02X (only ROM ONLY/0x00 is supported)", cartType)
	}

	title := make([]byte, 0, titleEnd-titleStart)
	for _, b := range rom[titleStart:titleEnd] {
		if b == 0x00 {
			break
		}
		title = append(title, b)
	}

	return &Cartridge{
		Data:     rom,
		Title:    string(title),
		CartType: cartType,
		ROMSize:  rom[romSizeAddr],
		RAMSize:  rom[ramSizeAddr],
		Checksum: rom[checksumAddr],
	}, nil
}

// ResetVector returns the four bytes at 0x0100-0x0103, the entry point
// real hardware jumps to once the boot ROM hands off. Most cartridges hold
// a NOP followed by a JP here; gbcore.New sets PC to headerStart directly
// rather than decoding it, since every commercial ROM's header begins with
// exactly that jump.
func (c *Cartridge) ResetVector() [4]byte {
	var v [4]byte
	copy(v[:], c.Data[resetVecStart:resetVecStart+4])
	return v
}
