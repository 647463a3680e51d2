package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gonebody/cpu"
	"gonebody/mem"
)

func newNopExecutor() *cpu.Executor {
	bus := mem.NewBus(&mem.InterruptController{})
	for addr := 0; addr < 0x100; addr++ {
		bus.Write8(uint16(addr), 0x00) // NOP everywhere, runs forever
	}
	return cpu.NewExecutor(bus)
}

func TestStartRunsStepperAndPacerConcurrently(t *testing.T) {
	d := NewDriver(newNopExecutor())
	d.Start()
	time.Sleep(20 * time.Millisecond)
	err := d.Terminate()
	assert.NoError(t, err)
}

func TestStartTwiceIsNoOp(t *testing.T) {
	d := NewDriver(newNopExecutor())
	d.Start()
	firstGroup := d.eg
	d.Start()
	assert.Same(t, firstGroup, d.eg, "second Start must not relaunch goroutines")
	_ = d.Terminate()
}

func TestResumeWithoutPauseIsNoOp(t *testing.T) {
	d := NewDriver(newNopExecutor())
	assert.False(t, d.paused.Load())
	d.Resume()
	assert.False(t, d.paused.Load())
}

func TestPauseStopsCycleConsumption(t *testing.T) {
	d := NewDriver(newNopExecutor())
	d.Start()
	d.Pause()
	time.Sleep(10 * time.Millisecond)
	budgetAfterPause := d.budget.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, budgetAfterPause, d.budget.Load(), "paused stepper must not drain budget, paused pacer must not add to it")
	_ = d.Terminate()
}

func TestOnFrameFiresWhileRunning(t *testing.T) {
	d := NewDriver(newNopExecutor())
	var calls atomic.Int32
	d.OnFrame(func() { calls.Add(1) })
	d.Start()
	time.Sleep(40 * time.Millisecond)
	_ = d.Terminate()
	assert.Greater(t, calls.Load(), int32(0), "pacer must call OnFrame at least once in 40ms at 60Hz")
}

func TestTerminateSurfacesFatalOpcode(t *testing.T) {
	bus := mem.NewBus(&mem.InterruptController{})
	bus.LoadROM([]byte{0xD3}) // illegal opcode
	d := NewDriver(cpu.NewExecutor(bus))
	d.Start()
	err := d.Wait()
	assert.Error(t, err)
}
