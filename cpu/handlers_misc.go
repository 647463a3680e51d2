package cpu

// registerMiscOpcodes builds NOP, STOP, HALT, DI, EI, SCF, CCF, CPL, DAA.
func registerMiscOpcodes() {
	primaryTable[0x00] = Instruction{Name: "NOP", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		return 4
	}}

	// STOP is encoded as a two-byte opcode (0x10 0x00) on real hardware;
	// this core has no display or speed-switch logic to distinguish it
	// from HALT, so it consumes the padding byte and halts the same way.
	primaryTable[0x10] = Instruction{Name: "STOP", Length: 2, Cycles: 4, Handler: func(e *Executor) int {
		e.imm8()
		e.halted = true
		return 4
	}}

	primaryTable[0x76] = Instruction{Name: "HALT", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		if !e.IME && e.Bus.Interrupts().Pending() {
			e.haltBug = true
		} else {
			e.halted = true
		}
		return 4
	}}

	primaryTable[0xF3] = Instruction{Name: "DI", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		e.IME = false
		e.eiArmed = false
		e.eiPending = false
		return 4
	}}
	primaryTable[0xFB] = Instruction{Name: "EI", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		e.eiArmed = true
		return 4
	}}

	primaryTable[0x37] = Instruction{Name: "SCF", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		e.Reg.SetFlag(flagN, false)
		e.Reg.SetFlag(flagH, false)
		e.Reg.SetFlag(flagC, true)
		return 4
	}}
	primaryTable[0x3F] = Instruction{Name: "CCF", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		e.Reg.SetFlag(flagN, false)
		e.Reg.SetFlag(flagH, false)
		e.Reg.SetFlag(flagC, !e.Reg.GetFlag(flagC))
		return 4
	}}
	primaryTable[0x2F] = Instruction{Name: "CPL", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		e.Reg.Set8(A, ^e.Reg.Get8(A))
		e.Reg.SetFlag(flagN, true)
		e.Reg.SetFlag(flagH, true)
		return 4
	}}
	primaryTable[0x27] = Instruction{Name: "DAA", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		res, z, c := daa(e.Reg.Get8(A), e.Reg.GetFlag(flagN), e.Reg.GetFlag(flagH), e.Reg.GetFlag(flagC))
		e.Reg.Set8(A, res)
		e.Reg.SetFlag(flagZ, z)
		e.Reg.SetFlag(flagH, false)
		e.Reg.SetFlag(flagC, c)
		return 4
	}}
}
