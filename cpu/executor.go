package cpu

import (
	"fmt"
	"log"

	"gonebody/mask"
	"gonebody/mem"
)

// Executor drives the fetch-decode-execute loop against a Registers file
// and a mem.Bus, and owns interrupt dispatch. It has no notion of
// wall-clock pacing or threading; that belongs to the clock package, which
// calls Step in a loop and decides cadence while Step does one unit of
// work and returns its cost.
type Executor struct {
	Reg Registers
	Bus *mem.Bus

	// Cycles is the cumulative T-cycle count since reset.
	Cycles uint64

	// IME is the interrupt master enable latch.
	IME bool

	// EI's one-instruction deferral needs two stages: eiArmed is set the
	// instant EI's handler runs, and is promoted to eiPending at the end
	// of that same Step (so EI's own step does not apply it). eiPending
	// is then consumed at the end of the *following* Step, i.e. after the
	// next instruction completes.
	eiArmed   bool
	eiPending bool

	halted bool

	// haltBug is set by HALT when IME=0 and an enabled interrupt is
	// already pending at the moment HALT executes. Real hardware fails to
	// halt in this case and additionally fails to advance PC past the
	// next opcode fetch once, causing that byte to be decoded twice. Step
	// consumes this flag on the very next fetch.
	haltBug bool

	// Fatal holds the reason Step last refused to continue (unknown
	// opcode), once set. Step returns the same error, and the clock driver
	// records that returned error as the terminate cause.
	Fatal error
}

// NewExecutor wires an Executor to a bus. Registers start zeroed; callers
// that want the hardware's post-boot-ROM state should call ResetPostBoot
// explicitly.
func NewExecutor(bus *mem.Bus) *Executor {
	return &Executor{Bus: bus}
}

// ResetPostBoot sets the register file and interrupt latches to the values
// real hardware leaves behind once its internal boot ROM hands off to the
// cartridge: PC=0x0100, SP=0xFFFE, A=0x01, F=0xB0, BC=0x0013, DE=0x00D8,
// HL=0x014D, IME=0, IF=0x00, IE=0x00.
func (e *Executor) ResetPostBoot() {
	e.Reg.Set16(PC, 0x0100)
	e.Reg.Set16(SP, 0xFFFE)
	e.Reg.Set8(A, 0x01)
	e.Reg.Set8(F, 0xB0)
	e.Reg.Set16(BC, 0x0013)
	e.Reg.Set16(DE, 0x00D8)
	e.Reg.Set16(HL, 0x014D)
	e.IME = false
	e.Bus.Interrupts().SetIF(0x00)
	e.Bus.Interrupts().SetIE(0x00)
}

// fetchOpcode reads the byte at PC for opcode dispatch. It advances PC
// normally, except that it consumes haltBug (without advancing PC) exactly
// once, reproducing the documented HALT bug: the instruction immediately
// after a buggy HALT is fetched, and then fetched again with the same PC.
func (e *Executor) fetchOpcode() uint8 {
	pc := e.Reg.Get16(PC)
	v := e.Bus.Read8(pc)
	if e.haltBug {
		e.haltBug = false
		return v
	}
	e.Reg.Set16(PC, pc+1)
	return v
}

// imm8 reads the byte at PC and advances PC past it. Used by handlers for
// immediate operands and displacement/offset bytes.
func (e *Executor) imm8() uint8 {
	pc := e.Reg.Get16(PC)
	v := e.Bus.Read8(pc)
	e.Reg.Set16(PC, pc+1)
	return v
}

// imm16 reads a little-endian 16-bit immediate at PC and advances PC past
// both bytes.
func (e *Executor) imm16() uint16 {
	lo := e.imm8()
	hi := e.imm8()
	return mask.Word(hi, lo)
}

// push16 writes v to the stack, high byte at the higher address, and
// decrements SP by two.
func (e *Executor) push16(v uint16) {
	hi, lo := mask.Split(v)
	sp := e.Reg.Get16(SP) - 1
	e.Bus.Write8(sp, hi)
	sp--
	e.Bus.Write8(sp, lo)
	e.Reg.Set16(SP, sp)
}

// pop16 reads a value off the stack and increments SP by two.
func (e *Executor) pop16() uint16 {
	sp := e.Reg.Get16(SP)
	lo := e.Bus.Read8(sp)
	sp++
	hi := e.Bus.Read8(sp)
	sp++
	e.Reg.Set16(SP, sp)
	return mask.Word(hi, lo)
}

// Step services a halt or a pending interrupt if one applies, and
// otherwise fetches, decodes, and executes exactly one instruction. It
// returns the number of T-cycles it consumed. A non-nil error means Step hit an
// unknown/illegal opcode and refused to execute it; Fatal holds the same
// error for later inspection and the caller (normally clock.Driver) is
// expected to stop calling Step.
func (e *Executor) Step() (int, error) {
	if e.halted {
		if !e.Bus.Interrupts().Pending() {
			e.Cycles += 4
			return 4, nil
		}
		// An enabled-pending interrupt clears the halt latch regardless
		// of IME; whether it is actually serviced this Step depends on
		// IME, checked next.
		e.halted = false
	}

	if e.IME && e.Bus.Interrupts().Pending() {
		_, vector, ok := e.Bus.Interrupts().Claim()
		if ok {
			e.IME = false
			e.push16(e.Reg.Get16(PC))
			e.Reg.Set16(PC, vector)
			e.Cycles += 20
			return 20, nil
		}
	}

	opcode := e.fetchOpcode()
	inst := primaryTable[opcode]
	if opcode == 0xCB {
		cb := e.imm8()
		inst = cbTable[cb]
		if inst.Handler == nil {
			return e.fail(fmt.Errorf("cpu: unknown CB-prefixed opcode 0x%02X", cb))
		}
	} else if inst.Handler == nil {
		return e.fail(fmt.Errorf("cpu: unknown opcode 0x%02X at 0x%04X", opcode, e.Reg.Get16(PC)-1))
	}

	cycles := inst.Handler(e)
	e.Cycles += uint64(cycles)

	if e.eiArmed {
		e.eiArmed = false
		e.eiPending = true
	} else if e.eiPending {
		e.eiPending = false
		e.IME = true
	}

	return cycles, nil
}

func (e *Executor) fail(err error) (int, error) {
	log.Printf("executor: %v", err)
	e.Fatal = err
	return 0, err
}

// Run calls Step n times, or until Step returns an error. It returns the
// total T-cycles consumed across those steps and the first error
// encountered, if any.
func (e *Executor) Run(n uint64) (uint64, error) {
	var total uint64
	for i := uint64(0); i < n; i++ {
		c, err := e.Step()
		total += uint64(c)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Snapshot is an immutable copy of executor state for a read-only observer
// (the inspector package) to render. Nothing outside this package ever
// gets a pointer into live Executor state; callers poll Snapshot between
// Steps instead.
type Snapshot struct {
	A, B, C, D, E, H, L, F uint8
	PC, SP                 uint16
	Cycles                 uint64
	IME                    bool
	Halted                 bool
	Fatal                  error

	// Page is a 256-byte window of memory starting at PageStart, for the
	// inspector's memory-dump view.
	PageStart uint16
	Page      [256]byte
}

// Snapshot captures the executor's current state and a 256-byte memory
// window starting at pageStart.
func (e *Executor) Snapshot(pageStart uint16) Snapshot {
	s := Snapshot{
		A: e.Reg.Get8(A), B: e.Reg.Get8(B), C: e.Reg.Get8(C),
		D: e.Reg.Get8(D), E: e.Reg.Get8(E), H: e.Reg.Get8(H), L: e.Reg.Get8(L),
		F:      e.Reg.Get8(F),
		PC:     e.Reg.Get16(PC),
		SP:     e.Reg.Get16(SP),
		Cycles: e.Cycles,
		IME:    e.IME,
		Halted: e.halted,
		Fatal:  e.Fatal,

		PageStart: pageStart,
	}
	for i := range s.Page {
		s.Page[i] = e.Bus.Read8(pageStart + uint16(i))
	}
	return s
}
