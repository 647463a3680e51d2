// Package gbcore is the process-surface facade around the execution core:
// the core offers no CLI of its own, so whatever embeds it needs one type
// that wires cartridge.Load, mem.NewBus, cpu.NewExecutor, and
// clock.NewDriver together and exposes the lifecycle as a Go constructor
// plus Launch/HandleInput/Stop methods.
package gbcore

import (
	"fmt"

	"gonebody/cartridge"
	"gonebody/clock"
	"gonebody/cpu"
	"gonebody/input"
	"gonebody/mem"
	"gonebody/video"
)

// Console owns one emulated machine: its cartridge, bus, executor, clock
// driver, and input controller. The zero value is not usable; construct
// with New.
type Console struct {
	Cart *cartridge.Cartridge
	Bus  *mem.Bus
	Exec *cpu.Executor
	Clk  *clock.Driver
	In   *input.Controller

	sink video.Sink
}

// New validates and loads rom, wires a fresh bus/executor/clock triple
// around it, and resets the executor to the post-boot-ROM register state.
// sink receives one frame per paced tick; pass video.NullSink{}
// for a headless run. New does not start anything; call Launch for that.
func New(rom []byte, sink video.Sink) (*Console, error) {
	cart, err := cartridge.Load(rom)
	if err != nil {
		return nil, fmt.Errorf("gbcore: %w", err)
	}
	if sink == nil {
		sink = video.NullSink{}
	}

	irq := &mem.InterruptController{}
	bus := mem.NewBus(irq)
	bus.LoadROM(cart.Data)

	exec := cpu.NewExecutor(bus)
	exec.ResetPostBoot()

	drv := clock.NewDriver(exec)
	drv.OnFrame(func() {
		sink.Present(scanVRAM(bus))
	})

	return &Console{
		Cart: cart,
		Bus:  bus,
		Exec: exec,
		Clk:  drv,
		In:   input.NewController(bus),
		sink: sink,
	}, nil
}

// Launch starts the clock driver's stepper and pacer goroutines. Calling
// Launch twice is a no-op (clock.Driver.Start already guards this).
func (c *Console) Launch() {
	c.Clk.Start()
}

// HandleInput forwards a joypad mask to the bus. Safe to call from any
// goroutine: the joypad byte is the one piece of CPU-visible state a
// non-stepper thread is allowed to touch.
func (c *Console) HandleInput(mask byte) {
	c.In.Handle(mask)
}

// Stop terminates the clock driver and blocks until both its goroutines
// have exited, returning the first fatal error encountered (typically an
// unknown opcode).
func (c *Console) Stop() error {
	return c.Clk.Terminate()
}

// Snapshot exposes the executor's state for the inspector package, without
// handing out the live executor itself.
func (c *Console) Snapshot() cpu.Snapshot {
	return c.Exec.Snapshot(0xFF80)
}

// scanVRAM stands in for a real raster scanner: it takes the immutable
// VRAM snapshot the bus already exposes and
// maps each byte onto a grayscale sample, giving the screen collaborator
// something to draw without this core reimplementing the PPU.
func scanVRAM(bus *mem.Bus) video.Frame {
	vram := bus.VRAM()
	var frame video.Frame
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			frame[y][x] = vram[(y*video.Width+x)%len(vram)]
		}
	}
	return frame
}
