package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chyp8vm/chyp"
	"chyp8vm/emu/clock"
	"chyp8vm/emu/cpu"
	"chyp8vm/emu/screen/window"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start [path/ROM]",
	Short: "load and start the Emulator",
	Args:  cobra.MaximumNArgs(1),
	RunE:  Start,
}

// chyp8 start 'path/to/ROM' --ips 700
func Start(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(viper.GetViper())
	if err != nil {
		return err
	}
	logger := newLogger(opts)

	emu, err := newMachine(logger, opts, args)
	if err != nil {
		return err
	}

	sched, err := clock.NewScheduler(clock.System{}, opts.IPS, opts.TimerHz)
	if err != nil {
		return err
	}

	run := func() error {
		display, closeDisplay, err := openDisplay(opts)
		if err != nil {
			return fmt.Errorf("opening display: %w", err)
		}
		defer closeDisplay()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return handleExit(logger, emu.Run(ctx, sched, display))
	}

	if opts.Display != displayWindow {
		return run()
	}
	window.RunOnMainThread(func() {
		err = run()
	})
	return err
}

func newMachine(logger *log.Logger, opts options, args []string) (*cpu.EMU, error) {
	emu := cpu.NewEMU(logger, opts.machineConfig())
	logger.Info("Machine configured",
		log.Int("ips", opts.IPS),
		log.Int("timer_hz", opts.TimerHz),
		log.String("quirks", quirkName(opts.Legacy)),
		log.String("display", opts.Display),
	)
	if opts.TimerHz != clock.DefaultTimerHz {
		logger.Warn("Timer rate differs from the standard 60 Hz", log.Int("timer_hz", opts.TimerHz))
	}

	if len(args) == 0 {
		logger.Info("No ROM given, machine is idle")
		return emu, nil
	}

	size, err := chyp.LoadGame(emu, args[0])
	if err != nil {
		return nil, err
	}
	logger.Info("ROM loaded", log.String("file", args[0]), log.Int("size", size))
	return emu, nil
}

// handleExit turns the ways a run can end into the command result. A halt
// and a user stop end the run normally.
func handleExit(logger *log.Logger, err error) error {
	var haltErr *cpu.HaltError
	switch {
	case err == nil:
		logger.Info("Display closed")
		return nil
	case errors.As(err, &haltErr):
		logger.Warn("Machine halted",
			log.Hex("pc", haltErr.PC),
			log.Hex("opcode", haltErr.Opcode),
			log.Err(haltErr.Err))
		return nil
	case errors.Is(err, context.Canceled):
		logger.Info("Emulation stopped")
		return nil
	default:
		return err
	}
}

func quirkName(legacy bool) string {
	if legacy {
		return "legacy"
	}
	return "modern"
}
