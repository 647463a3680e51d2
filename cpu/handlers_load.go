package cpu

// registerLoadOpcodes builds the 8-bit and 16-bit LD/PUSH/POP families:
// opcodes 0x40-0x7F (LD r,r', minus 0x76 which is HALT), the eight LD r,n
// forms, the four LD rr,nn forms, the (BC)/(DE)/(HL+)/(HL-) accumulator
// loads, LD (nn),SP, LD SP,HL, LD HL,SP+e, LDH, LD (C),A/LD A,(C),
// LD (nn),A/LD A,(nn), and PUSH/POP.
func registerLoadOpcodes() {
	// LD r,r': 8x8 grid at 0x40-0x7F, row = dst, col = src.
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			opcode := byte(0x40 + row*8 + col)
			if opcode == 0x76 {
				continue // HALT, registered in registerMiscOpcodes
			}
			dst := operandsInOrder[row]
			src := operandsInOrder[col]
			cycles := 4
			if isMem(dst) || isMem(src) {
				cycles = 8
			}
			primaryTable[opcode] = Instruction{
				Name: "LD", Length: 1, Cycles: cycles,
				Handler: func(e *Executor) int {
					dst.set(e, src.get(e))
					return cycles
				},
			}
		}
	}

	// LD r,n: 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E.
	for col := 0; col < 8; col++ {
		opcode := byte(0x06 + col*8)
		dst := operandsInOrder[col]
		cycles := 8
		if isMem(dst) {
			cycles = 12
		}
		primaryTable[opcode] = Instruction{
			Name: "LD r,n", Length: 2, Cycles: cycles,
			Handler: func(e *Executor) int {
				dst.set(e, e.imm8())
				return cycles
			},
		}
	}

	// LD rr,nn: 0x01, 0x11, 0x21, 0x31.
	for i, pair := range pairsInOrder {
		opcode := byte(0x01 + i*0x10)
		pair := pair
		primaryTable[opcode] = Instruction{
			Name: "LD rr,nn", Length: 3, Cycles: 12,
			Handler: func(e *Executor) int {
				e.Reg.Set16(pair, e.imm16())
				return 12
			},
		}
	}

	primaryTable[0x02] = Instruction{Name: "LD (BC),A", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
		e.Bus.Write8(e.Reg.Get16(BC), e.Reg.Get8(A))
		return 8
	}}
	primaryTable[0x12] = Instruction{Name: "LD (DE),A", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
		e.Bus.Write8(e.Reg.Get16(DE), e.Reg.Get8(A))
		return 8
	}}
	primaryTable[0x22] = Instruction{Name: "LD (HL+),A", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
		hl := e.Reg.Get16(HL)
		e.Bus.Write8(hl, e.Reg.Get8(A))
		e.Reg.Set16(HL, hl+1)
		return 8
	}}
	primaryTable[0x32] = Instruction{Name: "LD (HL-),A", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
		hl := e.Reg.Get16(HL)
		e.Bus.Write8(hl, e.Reg.Get8(A))
		e.Reg.Set16(HL, hl-1)
		return 8
	}}

	primaryTable[0x0A] = Instruction{Name: "LD A,(BC)", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
		e.Reg.Set8(A, e.Bus.Read8(e.Reg.Get16(BC)))
		return 8
	}}
	primaryTable[0x1A] = Instruction{Name: "LD A,(DE)", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
		e.Reg.Set8(A, e.Bus.Read8(e.Reg.Get16(DE)))
		return 8
	}}
	primaryTable[0x2A] = Instruction{Name: "LD A,(HL+)", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
		hl := e.Reg.Get16(HL)
		e.Reg.Set8(A, e.Bus.Read8(hl))
		e.Reg.Set16(HL, hl+1)
		return 8
	}}
	primaryTable[0x3A] = Instruction{Name: "LD A,(HL-)", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
		hl := e.Reg.Get16(HL)
		e.Reg.Set8(A, e.Bus.Read8(hl))
		e.Reg.Set16(HL, hl-1)
		return 8
	}}

	primaryTable[0x08] = Instruction{Name: "LD (nn),SP", Length: 3, Cycles: 20, Handler: func(e *Executor) int {
		addr := e.imm16()
		e.Bus.Write16(addr, e.Reg.Get16(SP))
		return 20
	}}

	primaryTable[0xF9] = Instruction{Name: "LD SP,HL", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
		e.Reg.Set16(SP, e.Reg.Get16(HL))
		return 8
	}}

	primaryTable[0xF8] = Instruction{Name: "LD HL,SP+e", Length: 2, Cycles: 12, Handler: func(e *Executor) int {
		offset := int8(e.imm8())
		res, h, c := addSPSigned(e.Reg.Get16(SP), offset)
		e.Reg.Set16(HL, res)
		e.Reg.SetFlag(flagZ, false)
		e.Reg.SetFlag(flagN, false)
		e.Reg.SetFlag(flagH, h)
		e.Reg.SetFlag(flagC, c)
		return 12
	}}

	primaryTable[0xE0] = Instruction{Name: "LDH (n),A", Length: 2, Cycles: 12, Handler: func(e *Executor) int {
		addr := 0xFF00 + uint16(e.imm8())
		e.Bus.Write8(addr, e.Reg.Get8(A))
		return 12
	}}
	primaryTable[0xF0] = Instruction{Name: "LDH A,(n)", Length: 2, Cycles: 12, Handler: func(e *Executor) int {
		addr := 0xFF00 + uint16(e.imm8())
		e.Reg.Set8(A, e.Bus.Read8(addr))
		return 12
	}}

	primaryTable[0xE2] = Instruction{Name: "LD (C),A", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
		addr := 0xFF00 + uint16(e.Reg.Get8(C))
		e.Bus.Write8(addr, e.Reg.Get8(A))
		return 8
	}}
	primaryTable[0xF2] = Instruction{Name: "LD A,(C)", Length: 1, Cycles: 8, Handler: func(e *Executor) int {
		addr := 0xFF00 + uint16(e.Reg.Get8(C))
		e.Reg.Set8(A, e.Bus.Read8(addr))
		return 8
	}}

	primaryTable[0xEA] = Instruction{Name: "LD (nn),A", Length: 3, Cycles: 16, Handler: func(e *Executor) int {
		addr := e.imm16()
		e.Bus.Write8(addr, e.Reg.Get8(A))
		return 16
	}}
	primaryTable[0xFA] = Instruction{Name: "LD A,(nn)", Length: 3, Cycles: 16, Handler: func(e *Executor) int {
		addr := e.imm16()
		e.Reg.Set8(A, e.Bus.Read8(addr))
		return 16
	}}

	for i, pair := range pushPopPairsInOrder {
		opcode := byte(0xC1 + i*0x10)
		pair := pair
		primaryTable[opcode] = Instruction{Name: "POP rr", Length: 1, Cycles: 12, Handler: func(e *Executor) int {
			e.Reg.Set16(pair, e.pop16())
			return 12
		}}
	}
	for i, pair := range pushPopPairsInOrder {
		opcode := byte(0xC5 + i*0x10)
		pair := pair
		primaryTable[opcode] = Instruction{Name: "PUSH rr", Length: 1, Cycles: 16, Handler: func(e *Executor) int {
			e.push16(e.Reg.Get16(pair))
			return 16
		}}
	}
}
