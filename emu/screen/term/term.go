// Package term renders the framebuffer in a terminal with termbox.
package term

import (
	"fmt"
	"time"

	"chyp8vm/emu/screen"

	"github.com/nsf/termbox-go"
)

const frameInterval = time.Second / 60

// Terminal renders the framebuffer with termbox, two character cells per
// pixel. Esc or Ctrl-C closes it.
type Terminal struct {
	events    chan termbox.Event
	closed    bool
	lastFrame time.Time
}

// New takes over the terminal until Close is called.
func New() (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)

	t := &Terminal{
		events: make(chan termbox.Event, 16),
	}
	go t.poll()
	return t, nil
}

func (t *Terminal) poll() {
	for {
		event := termbox.PollEvent()
		if event.Type == termbox.EventInterrupt {
			close(t.events)
			return
		}
		select {
		case t.events <- event:
		default: // drop input nobody is reading
		}
	}
}

// Refresh handles pending key events and redraws at most 60 times per second.
func (t *Terminal) Refresh(fb *screen.Framebuffer) error {
	t.handleEvents()
	if t.closed || time.Since(t.lastFrame) < frameInterval {
		return nil
	}
	t.lastFrame = time.Now()

	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	for row := 0; row < screen.Height; row++ {
		for col := 0; col < screen.Width; col++ {
			if fb.Pixel(row, col) {
				termbox.SetCell(2*col, row, ' ', termbox.ColorDefault, termbox.ColorWhite)
				termbox.SetCell(2*col+1, row, ' ', termbox.ColorDefault, termbox.ColorWhite)
			}
		}
	}
	return termbox.Flush()
}

func (t *Terminal) handleEvents() {
	for {
		select {
		case event, ok := <-t.events:
			if !ok {
				return
			}
			if event.Type == termbox.EventKey && (event.Key == termbox.KeyEsc || event.Key == termbox.KeyCtrlC) {
				t.closed = true
			}
		default:
			return
		}
	}
}

// Closed reports whether the user asked to quit.
func (t *Terminal) Closed() bool {
	return t.closed
}

// Close restores the terminal.
func (t *Terminal) Close() {
	termbox.Interrupt()
	termbox.Close()
}
