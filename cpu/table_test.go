package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var illegalOpcodes = map[byte]bool{
	0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true,
	0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

func TestPrimaryTableCoversEveryLegalOpcode(t *testing.T) {
	for op := 0; op < 256; op++ {
		b := byte(op)
		if illegalOpcodes[b] || b == 0xCB {
			continue
		}
		assert.NotNil(t, primaryTable[b].Handler, "opcode 0x%02X has no handler", b)
	}
}

func TestCbTableCoversEveryOpcode(t *testing.T) {
	for op := 0; op < 256; op++ {
		assert.NotNil(t, cbTable[byte(op)].Handler, "CB opcode 0x%02X has no handler", byte(op))
	}
}

func TestLdRNTableShapes(t *testing.T) {
	assert.Equal(t, 2, primaryTable[0x06].Length)
	assert.Equal(t, 8, primaryTable[0x06].Cycles)
	assert.Equal(t, 12, primaryTable[0x36].Cycles, "LD (HL),n costs more than a register destination")
}

func TestAluImmediateRowSpacing(t *testing.T) {
	assert.Equal(t, "ADD A,n", primaryTable[0xC6].Name)
	assert.Equal(t, "CP n", primaryTable[0xFE].Name)
}
