package screen

// Headless is a display that draws nothing and is never closed.
type Headless struct{}

func (Headless) Refresh(*Framebuffer) error { return nil }

func (Headless) Closed() bool { return false }
