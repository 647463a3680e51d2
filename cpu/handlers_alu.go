package cpu

// registerAluOpcodes builds the 8-bit ALU grid (0x80-0xBF) and its
// immediate-operand counterparts (0xC6-0xFE), INC/DEC r and INC/DEC (HL),
// INC/DEC rr, ADD HL,rr, and ADD SP,e.
func registerAluOpcodes() {
	type aluOp struct {
		name string
		// apply computes the new A and flags given A and the operand.
		apply func(e *Executor, operand byte) (result byte, z, n, h, c bool)
		// writesA reports whether the result overwrites A (false for CP).
		writesA bool
	}

	ops := [8]aluOp{
		{"ADD A,", func(e *Executor, v byte) (byte, bool, bool, bool, bool) { return add8(e.Reg.Get8(A), v) }, true},
		{"ADC A,", func(e *Executor, v byte) (byte, bool, bool, bool, bool) {
			return adc8(e.Reg.Get8(A), v, e.Reg.GetFlag(flagC))
		}, true},
		{"SUB ", func(e *Executor, v byte) (byte, bool, bool, bool, bool) { return sub8(e.Reg.Get8(A), v) }, true},
		{"SBC A,", func(e *Executor, v byte) (byte, bool, bool, bool, bool) {
			return sbc8(e.Reg.Get8(A), v, e.Reg.GetFlag(flagC))
		}, true},
		{"AND ", func(e *Executor, v byte) (byte, bool, bool, bool, bool) { return and8(e.Reg.Get8(A), v) }, true},
		{"XOR ", func(e *Executor, v byte) (byte, bool, bool, bool, bool) { return xor8(e.Reg.Get8(A), v) }, true},
		{"OR ", func(e *Executor, v byte) (byte, bool, bool, bool, bool) { return or8(e.Reg.Get8(A), v) }, true},
		{"CP ", func(e *Executor, v byte) (byte, bool, bool, bool, bool) { return sub8(e.Reg.Get8(A), v) }, false},
	}

	apply := func(e *Executor, op aluOp, operand byte) {
		res, z, n, h, c := op.apply(e, operand)
		if op.writesA {
			e.Reg.Set8(A, res)
		}
		e.Reg.SetFlag(flagZ, z)
		e.Reg.SetFlag(flagN, n)
		e.Reg.SetFlag(flagH, h)
		e.Reg.SetFlag(flagC, c)
	}

	for row := 0; row < 8; row++ {
		op := ops[row]
		for col := 0; col < 8; col++ {
			opcode := byte(0x80 + row*8 + col)
			src := operandsInOrder[col]
			cycles := 4
			if isMem(src) {
				cycles = 8
			}
			primaryTable[opcode] = Instruction{
				Name: op.name + "r", Length: 1, Cycles: cycles,
				Handler: func(e *Executor) int {
					apply(e, op, src.get(e))
					return cycles
				},
			}
		}

		opcode := byte(0xC6 + row*8)
		primaryTable[opcode] = Instruction{
			Name: op.name + "n", Length: 2, Cycles: 8,
			Handler: func(e *Executor) int {
				apply(e, op, e.imm8())
				return 8
			},
		}
	}

	// INC r / DEC r / INC (HL) / DEC (HL).
	for col := 0; col < 8; col++ {
		dst := operandsInOrder[col]
		incOpcode := byte(0x04 + col*8)
		decOpcode := byte(0x05 + col*8)
		cycles := 4
		if isMem(dst) {
			cycles = 12
		}
		primaryTable[incOpcode] = Instruction{Name: "INC r", Length: 1, Cycles: cycles, Handler: func(e *Executor) int {
			res, z, n, h := inc8(dst.get(e))
			dst.set(e, res)
			e.Reg.SetFlag(flagZ, z)
			e.Reg.SetFlag(flagN, n)
			e.Reg.SetFlag(flagH, h)
			return cycles
		}}
		primaryTable[decOpcode] = Instruction{Name: "DEC r", Length: 1, Cycles: cycles, Handler: func(e *Executor) int {
			res, z, n, h := dec8(dst.get(e))
			dst.set(e, res)
			e.Reg.SetFlag(flagZ, z)
			e.Reg.SetFlag(flagN, n)
			e.Reg.SetFlag(flagH, h)
			return cycles
		}}
	}

	// 16-bit INC/DEC/ADD HL,rr.
	for i, pair := range pairsInOrder {
		pair := pair
		incOpcode := byte(0x03 + i*0x10)
		decOpcode := byte(0x0B + i*0x10)
		addOpcode := byte(0x09 + i*0x10)
		primaryTable[incOpcode] = Instruction{Name: "INC rr", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
			e.Reg.Set16(pair, e.Reg.Get16(pair)+1)
			return 8
		}}
		primaryTable[decOpcode] = Instruction{Name: "DEC rr", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
			e.Reg.Set16(pair, e.Reg.Get16(pair)-1)
			return 8
		}}
		primaryTable[addOpcode] = Instruction{Name: "ADD HL,rr", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
			res, h, c := add16(e.Reg.Get16(HL), e.Reg.Get16(pair))
			e.Reg.Set16(HL, res)
			e.Reg.SetFlag(flagN, false)
			e.Reg.SetFlag(flagH, h)
			e.Reg.SetFlag(flagC, c)
			return 8
		}}
	}

	primaryTable[0xE8] = Instruction{Name: "ADD SP,e", Length: 2, Cycles: 16, Handler: func(e *Executor) int {
		offset := int8(e.imm8())
		res, h, c := addSPSigned(e.Reg.Get16(SP), offset)
		e.Reg.Set16(SP, res)
		e.Reg.SetFlag(flagZ, false)
		e.Reg.SetFlag(flagN, false)
		e.Reg.SetFlag(flagH, h)
		e.Reg.SetFlag(flagC, c)
		return 16
	}}
}
