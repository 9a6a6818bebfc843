// Package window renders the framebuffer into a pixelgl window.
package window

import (
	"fmt"
	"time"

	"chyp8vm/emu/screen"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

const frameInterval = time.Second / 60

// RunOnMainThread initializes the window system and runs fn on the main
// thread. Windows can only be created and used inside fn.
func RunOnMainThread(fn func()) {
	pixelgl.Run(fn)
}

// Window renders the framebuffer into a pixelgl window, one filled square of
// side scale per lit pixel. It must be created inside pixelgl.Run.
type Window struct {
	*pixelgl.Window
	imd       *imdraw.IMDraw
	scale     float64
	lastFrame time.Time
}

// New opens a window sized for the framebuffer.
func New(title string, scale float64) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, screen.Width*scale, screen.Height*scale),
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	return &Window{
		Window: win,
		imd:    imdraw.New(nil),
		scale:  scale,
	}, nil
}

// Refresh redraws the window at most 60 times per second and processes
// window events in between.
func (w *Window) Refresh(fb *screen.Framebuffer) error {
	if time.Since(w.lastFrame) < frameInterval {
		w.UpdateInput()
		return nil
	}
	w.lastFrame = time.Now()

	w.Clear(colornames.Black)
	w.imd.Clear()
	w.imd.Color = colornames.White
	for row := 0; row < screen.Height; row++ {
		for col := 0; col < screen.Width; col++ {
			if !fb.Pixel(row, col) {
				continue
			}
			// pixel has its origin at the bottom left
			top := float64(screen.Height - row)
			w.imd.Push(
				pixel.V(float64(col)*w.scale, (top-1)*w.scale),
				pixel.V(float64(col+1)*w.scale, top*w.scale),
			)
			w.imd.Rectangle(0)
		}
	}
	w.imd.Draw(w)
	w.Update()
	return nil
}
