package cpu

import (
	"context"
	"fmt"

	"chyp8vm/emu/clock"
	"chyp8vm/emu/screen"
)

// Display is the renderer collaborator. It receives the framebuffer after
// every cycle and decides on its own how often to draw it.
type Display interface {
	Refresh(fb *screen.Framebuffer) error
	Closed() bool
}

// Run executes instructions at the scheduler's pace until the machine halts,
// the context is cancelled or the display is closed. A machine without a
// program stays idle and only refreshes the display.
func (emu *EMU) Run(ctx context.Context, sched *clock.Scheduler, display Display) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if display.Closed() {
			return nil
		}

		if sched.TimerDue() {
			emu.TickTimers()
		}
		sched.WaitInstruction()

		var cycleErr error
		if emu.loaded {
			cycleErr = emu.EmulateCycle()
		}
		if err := display.Refresh(emu.display); err != nil {
			return fmt.Errorf("refreshing display: %w", err)
		}
		if cycleErr != nil {
			return cycleErr
		}
	}
}
