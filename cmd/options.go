package cmd

import (
	"fmt"

	"chyp8vm/emu/cpu"
	"chyp8vm/emu/screen"
	"chyp8vm/emu/screen/term"
	"chyp8vm/emu/screen/window"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/viper"
)

const (
	displayWindow   = "window"
	displayTerminal = "terminal"
	displayNone     = "none"
)

// options is the resolved configuration of one run.
type options struct {
	IPS     int
	TimerHz int
	Legacy  bool
	Display string
	Scale   float64
	Debug   bool
	Quiet   bool
}

func loadOptions(v *viper.Viper) (options, error) {
	opts := options{
		IPS:     v.GetInt("ips"),
		TimerHz: v.GetInt("timer_hz"),
		Legacy:  v.GetBool("legacy"),
		Display: v.GetString("display"),
		Scale:   v.GetFloat64("scale"),
		Debug:   v.GetBool("debug"),
		Quiet:   v.GetBool("quiet"),
	}

	if opts.IPS <= 0 {
		return opts, fmt.Errorf("ips must be positive, got %d", opts.IPS)
	}
	if opts.TimerHz <= 0 {
		return opts, fmt.Errorf("timer-hz must be positive, got %d", opts.TimerHz)
	}
	if opts.Scale <= 0 {
		return opts, fmt.Errorf("scale must be positive, got %v", opts.Scale)
	}
	switch opts.Display {
	case displayWindow, displayTerminal, displayNone:
	default:
		return opts, fmt.Errorf("unsupported display '%s', valid options: window, terminal, none", opts.Display)
	}
	return opts, nil
}

// newLogger creates a logger with appropriate settings
func newLogger(opts options) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.Debug {
		cfg.Level = log.DebugLevel
	} else if opts.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func (o options) machineConfig() cpu.Config {
	return cpu.Config{
		Legacy: o.Legacy,
		Trace:  o.Debug,
	}
}

// openDisplay returns the renderer for the configured backend and a function
// that releases it.
func openDisplay(opts options) (cpu.Display, func(), error) {
	switch opts.Display {
	case displayWindow:
		win, err := window.New("Chyp8", opts.Scale)
		if err != nil {
			return nil, nil, err
		}
		return win, win.Destroy, nil

	case displayTerminal:
		terminal, err := term.New()
		if err != nil {
			return nil, nil, err
		}
		return terminal, terminal.Close, nil

	default:
		return screen.Headless{}, func() {}, nil
	}
}
