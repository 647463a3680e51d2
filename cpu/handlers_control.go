package cpu

// registerControlOpcodes builds JP/JR/CALL/RET/RETI/RST. The four
// conditions (NZ, Z, NC, C) share row spacing of 0x08 across JP cc,nn;
// CALL cc,nn; RET cc; and JR cc,e, so they are built with one loop each
// keyed by condition index rather than sixteen literal entries.
func registerControlOpcodes() {
	conditions := [4]func(e *Executor) bool{
		func(e *Executor) bool { return !e.Reg.GetFlag(flagZ) },
		func(e *Executor) bool { return e.Reg.GetFlag(flagZ) },
		func(e *Executor) bool { return !e.Reg.GetFlag(flagC) },
		func(e *Executor) bool { return e.Reg.GetFlag(flagC) },
	}
	names := [4]string{"NZ", "Z", "NC", "C"}

	primaryTable[0xC3] = Instruction{Name: "JP nn", Length: 3, Cycles: 16, Handler: func(e *Executor) int {
		target := e.imm16()
		e.Reg.Set16(PC, target)
		return 16
	}}
	primaryTable[0xE9] = Instruction{Name: "JP HL", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		e.Reg.Set16(PC, e.Reg.Get16(HL))
		return 4
	}}
	primaryTable[0x18] = Instruction{Name: "JR e", Length: 2, Cycles: 12, Handler: func(e *Executor) int {
		offset := int8(e.imm8())
		e.Reg.Set16(PC, uint16(int32(e.Reg.Get16(PC))+int32(offset)))
		return 12
	}}
	primaryTable[0xCD] = Instruction{Name: "CALL nn", Length: 3, Cycles: 24, Handler: func(e *Executor) int {
		target := e.imm16()
		e.push16(e.Reg.Get16(PC))
		e.Reg.Set16(PC, target)
		return 24
	}}
	primaryTable[0xC9] = Instruction{Name: "RET", Length: 1, Cycles: 16, Handler: func(e *Executor) int {
		e.Reg.Set16(PC, e.pop16())
		return 16
	}}
	primaryTable[0xD9] = Instruction{Name: "RETI", Length: 1, Cycles: 16, Handler: func(e *Executor) int {
		e.Reg.Set16(PC, e.pop16())
		e.IME = true
		return 16
	}}

	for row := 0; row < 4; row++ {
		cond := conditions[row]
		name := names[row]

		jpOpcode := byte(0xC2 + row*8)
		primaryTable[jpOpcode] = Instruction{Name: "JP " + name + ",nn", Length: 3, Cycles: 16, Handler: func(e *Executor) int {
			target := e.imm16()
			if cond(e) {
				e.Reg.Set16(PC, target)
				return 16
			}
			return 12
		}}

		jrOpcode := byte(0x20 + row*8)
		primaryTable[jrOpcode] = Instruction{Name: "JR " + name + ",e", Length: 2, Cycles: 12, Handler: func(e *Executor) int {
			offset := int8(e.imm8())
			if cond(e) {
				e.Reg.Set16(PC, uint16(int32(e.Reg.Get16(PC))+int32(offset)))
				return 12
			}
			return 8
		}}

		callOpcode := byte(0xC4 + row*8)
		primaryTable[callOpcode] = Instruction{Name: "CALL " + name + ",nn", Length: 3, Cycles: 24, Handler: func(e *Executor) int {
			target := e.imm16()
			if cond(e) {
				e.push16(e.Reg.Get16(PC))
				e.Reg.Set16(PC, target)
				return 24
			}
			return 12
		}}

		retOpcode := byte(0xC0 + row*8)
		primaryTable[retOpcode] = Instruction{Name: "RET " + name, Length: 1, Cycles: 20, Handler: func(e *Executor) int {
			if cond(e) {
				e.Reg.Set16(PC, e.pop16())
				return 20
			}
			return 8
		}}
	}

	for i := 0; i < 8; i++ {
		opcode := byte(0xC7 + i*8)
		vector := uint16(i * 8)
		primaryTable[opcode] = Instruction{Name: "RST", Length: 1, Cycles: 16, Handler: func(e *Executor) int {
			e.push16(e.Reg.Get16(PC))
			e.Reg.Set16(PC, vector)
			return 16
		}}
	}
}
