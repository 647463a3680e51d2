package cpu

// operand abstracts over "one of the 8 single-byte operands a row of the
// opcode table can address": the six plain registers, (HL), or A. Most
// instruction families (8-bit loads, ALU ops, CB rotates/shifts/bit ops)
// repeat the same body across all eight, differing only in cost (memory
// operands cost more), so the opcode-table builders can build those
// families with a loop instead of 8 near-identical literal entries apiece.
type operand interface {
	get(e *Executor) uint8
	set(e *Executor, v uint8)
}

type regOperand Reg8

func (o regOperand) get(e *Executor) uint8    { return e.Reg.Get8(Reg8(o)) }
func (o regOperand) set(e *Executor, v uint8) { e.Reg.Set8(Reg8(o), v) }

type hlMemOperand struct{}

func (hlMemOperand) get(e *Executor) uint8 {
	return e.Bus.Read8(e.Reg.Get16(HL))
}
func (hlMemOperand) set(e *Executor, v uint8) {
	e.Bus.Write8(e.Reg.Get16(HL), v)
}

// isMem reports whether op addresses memory at HL rather than a register;
// opcode-table builders use this to pick the right cycle cost per family.
func isMem(op operand) bool {
	_, ok := op.(hlMemOperand)
	return ok
}

// operandsInOrder is the canonical column order the LR35902 opcode table
// uses for single-byte operands: B, C, D, E, H, L, (HL), A.
var operandsInOrder = [8]operand{
	regOperand(B),
	regOperand(C),
	regOperand(D),
	regOperand(E),
	regOperand(H),
	regOperand(L),
	hlMemOperand{},
	regOperand(A),
}

// pairsInOrder is the canonical order for the 16-bit-pair opcode rows that
// include SP (as opposed to AF, used only by PUSH/POP).
var pairsInOrder = [4]Reg16{BC, DE, HL, SP}

// pushPopPairsInOrder is the canonical order for PUSH/POP, which use AF in
// place of SP.
var pushPopPairsInOrder = [4]Reg16{BC, DE, HL, AF}
