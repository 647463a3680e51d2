// Package clock paces a cpu.Executor against wall-clock time with a
// two-goroutine split: the stepper drives Step in a tight loop, and the
// pacer meters out a T-cycle budget at the LR35902's real clock rate so
// the stepper can't run ahead of real hardware speed.
package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"gonebody/cpu"
)

// HzDMG is the LR35902's T-cycle clock rate: 4.194304 MHz.
const HzDMG = 4194304

// ticksPerSecond is how often the pacer replenishes the stepper's budget.
// 60 Hz lines up with the console's frame rate, which is the cadence a
// host typically wants to poll for a completed frame anyway.
const ticksPerSecond = 60

// Driver runs a cpu.Executor on its own goroutines, paced to real time.
// The zero value is not usable; construct with NewDriver.
type Driver struct {
	exec *cpu.Executor

	mu      sync.Mutex
	lastErr error

	started   atomic.Bool
	paused    atomic.Bool
	terminate atomic.Bool

	budget atomic.Int64

	cancel context.CancelFunc
	eg     *errgroup.Group

	onFrame func()
}

// OnFrame registers fn to be called once per paced tick by the pacer
// goroutine, after it replenishes the stepper's budget. This is the hook
// the screen collaborator hangs a frame-present call off of.
// Must be called before Start; it is not safe to change concurrently with
// a running pacer.
func (d *Driver) OnFrame(fn func()) {
	d.onFrame = fn
}

// NewDriver wires a Driver to an executor. Start does the actual goroutine
// launch; constructing a Driver does not start anything.
func NewDriver(exec *cpu.Executor) *Driver {
	return &Driver{exec: exec}
}

// Start launches the stepper and pacer goroutines. Calling Start on an
// already-started Driver is a no-op.
func (d *Driver) Start() {
	if !d.started.CompareAndSwap(false, true) {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	eg, ctx := errgroup.WithContext(ctx)
	d.eg = eg

	eg.Go(func() error { return d.stepperLoop(ctx) })
	eg.Go(func() error { return d.pacerLoop(ctx) })
}

// Pause halts stepping without tearing down the goroutines. Cycles already
// budgeted are left unconsumed.
func (d *Driver) Pause() {
	d.paused.Store(true)
}

// Resume clears a prior Pause. Calling Resume without a matching Pause (or
// before Start) is a no-op.
func (d *Driver) Resume() {
	d.paused.Store(false)
}

// Terminate signals both goroutines to exit and blocks until they do,
// returning the first error either of them reported (typically the
// executor's Fatal, surfaced from an unknown opcode).
func (d *Driver) Terminate() error {
	if !d.started.Load() {
		return nil
	}
	d.terminate.Store(true)
	if d.cancel != nil {
		d.cancel()
	}
	return d.Wait()
}

// Wait blocks until both goroutines have exited, without requesting that
// they stop. Useful for a host that wants to wait on natural termination
// (e.g. the executor hit a fatal opcode) without calling Terminate itself.
func (d *Driver) Wait() error {
	if d.eg == nil {
		return nil
	}
	err := d.eg.Wait()
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.lastErr != nil {
		return d.lastErr
	}
	return err
}

// LastError reports the last fatal error recorded by the stepper, if any,
// without blocking.
func (d *Driver) LastError() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

func (d *Driver) recordErr(err error) {
	d.mu.Lock()
	if d.lastErr == nil {
		d.lastErr = err
	}
	d.mu.Unlock()
}

// stepperLoop keeps calling Step as long as a cycle budget is available,
// pausing and terminating per the atomic flags.
func (d *Driver) stepperLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if d.terminate.Load() {
			return nil
		}
		if d.paused.Load() || d.budget.Load() <= 0 {
			time.Sleep(time.Millisecond)
			continue
		}
		cycles, err := d.exec.Step()
		d.budget.Add(-int64(cycles))
		if err != nil {
			d.recordErr(err)
			d.terminate.Store(true)
			return err
		}
	}
}

// pacerLoop replenishes the stepper's budget HzDMG/ticksPerSecond T-cycles
// at a time, ticksPerSecond times a second.
func (d *Driver) pacerLoop(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / ticksPerSecond)
	defer ticker.Stop()
	const perTick = HzDMG / ticksPerSecond
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if d.terminate.Load() {
				return nil
			}
			if !d.paused.Load() {
				d.budget.Add(perTick)
				if d.onFrame != nil {
					d.onFrame()
				}
			}
		}
	}
}
