package cpu

import "gonebody/mask"

// registerBitOpcodes builds the four accumulator-only rotate instructions
// (RLCA/RLA/RRCA/RRA) and the entire CB-prefixed page: per-operand
// RLC/RRC/RL/RR/SLA/SRA/SWAP/SRL, then BIT/RES/SET for each of the 8 bit
// positions across all 8 operands.
func registerBitOpcodes() {
	primaryTable[0x07] = Instruction{Name: "RLCA", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		res, c := rlc(e.Reg.Get8(A))
		e.Reg.Set8(A, res)
		e.Reg.SetFlag(flagZ, false)
		e.Reg.SetFlag(flagN, false)
		e.Reg.SetFlag(flagH, false)
		e.Reg.SetFlag(flagC, c)
		return 4
	}}
	primaryTable[0x17] = Instruction{Name: "RLA", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		res, c := rl(e.Reg.Get8(A), e.Reg.GetFlag(flagC))
		e.Reg.Set8(A, res)
		e.Reg.SetFlag(flagZ, false)
		e.Reg.SetFlag(flagN, false)
		e.Reg.SetFlag(flagH, false)
		e.Reg.SetFlag(flagC, c)
		return 4
	}}
	primaryTable[0x0F] = Instruction{Name: "RRCA", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		res, c := rrc(e.Reg.Get8(A))
		e.Reg.Set8(A, res)
		e.Reg.SetFlag(flagZ, false)
		e.Reg.SetFlag(flagN, false)
		e.Reg.SetFlag(flagH, false)
		e.Reg.SetFlag(flagC, c)
		return 4
	}}
	primaryTable[0x1F] = Instruction{Name: "RRA", Length: 1, Cycles: 4, Handler: func(e *Executor) int {
		res, c := rr(e.Reg.Get8(A), e.Reg.GetFlag(flagC))
		e.Reg.Set8(A, res)
		e.Reg.SetFlag(flagZ, false)
		e.Reg.SetFlag(flagN, false)
		e.Reg.SetFlag(flagH, false)
		e.Reg.SetFlag(flagC, c)
		return 4
	}}

	type shiftOp struct {
		name string
		run  func(e *Executor, v byte) (byte, bool)
	}
	shiftOps := [8]shiftOp{
		{"RLC", func(e *Executor, v byte) (byte, bool) { return rlc(v) }},
		{"RRC", func(e *Executor, v byte) (byte, bool) { return rrc(v) }},
		{"RL", func(e *Executor, v byte) (byte, bool) { return rl(v, e.Reg.GetFlag(flagC)) }},
		{"RR", func(e *Executor, v byte) (byte, bool) { return rr(v, e.Reg.GetFlag(flagC)) }},
		{"SLA", func(e *Executor, v byte) (byte, bool) { return sla(v) }},
		{"SRA", func(e *Executor, v byte) (byte, bool) { return sra(v) }},
		{"SWAP", func(e *Executor, v byte) (byte, bool) { return swapNibbles(v), false }},
		{"SRL", func(e *Executor, v byte) (byte, bool) { return srl(v) }},
	}

	for row, op := range shiftOps {
		for col := 0; col < 8; col++ {
			opcode := byte(row*8 + col)
			target := operandsInOrder[col]
			cycles := 8
			if isMem(target) {
				cycles = 16
			}
			op := op
			cbTable[opcode] = Instruction{
				Name: op.name, Length: 2, Cycles: cycles,
				Handler: func(e *Executor) int {
					res, c := op.run(e, target.get(e))
					target.set(e, res)
					e.Reg.SetFlag(flagZ, res == 0)
					e.Reg.SetFlag(flagN, false)
					e.Reg.SetFlag(flagH, false)
					e.Reg.SetFlag(flagC, c)
					return cycles
				},
			}
		}
	}

	// BIT b,r: 0x40-0x7F. bit is LR35902's conventional LSB-first bit
	// number; mask.FromLSB converts it to the 1-indexed-from-MSB position
	// mask.IsSet expects.
	for bit := 0; bit < 8; bit++ {
		for col := 0; col < 8; col++ {
			opcode := byte(0x40 + bit*8 + col)
			target := operandsInOrder[col]
			pos := mask.FromLSB(bit)
			cycles := 8
			if isMem(target) {
				cycles = 12
			}
			cbTable[opcode] = Instruction{
				Name: "BIT", Length: 2, Cycles: cycles,
				Handler: func(e *Executor) int {
					e.Reg.SetFlag(flagZ, !mask.IsSet(target.get(e), pos))
					e.Reg.SetFlag(flagN, false)
					e.Reg.SetFlag(flagH, true)
					return cycles
				},
			}
		}
	}

	// RES b,r: 0x80-0xBF.
	for bit := 0; bit < 8; bit++ {
		for col := 0; col < 8; col++ {
			opcode := byte(0x80 + bit*8 + col)
			target := operandsInOrder[col]
			pos := mask.FromLSB(bit)
			cycles := 8
			if isMem(target) {
				cycles = 16
			}
			cbTable[opcode] = Instruction{
				Name: "RES", Length: 2, Cycles: cycles,
				Handler: func(e *Executor) int {
					target.set(e, mask.Unset(target.get(e), pos, pos))
					return cycles
				},
			}
		}
	}

	// SET b,r: 0xC0-0xFF.
	for bit := 0; bit < 8; bit++ {
		for col := 0; col < 8; col++ {
			opcode := byte(0xC0 + bit*8 + col)
			target := operandsInOrder[col]
			pos := mask.FromLSB(bit)
			cycles := 8
			if isMem(target) {
				cycles = 16
			}
			cbTable[opcode] = Instruction{
				Name: "SET", Length: 2, Cycles: cycles,
				Handler: func(e *Executor) int {
					target.set(e, mask.Set(target.get(e), pos, 1))
					return cycles
				},
			}
		}
	}
}
