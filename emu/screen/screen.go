// Package screen holds the monochrome framebuffer and the headless renderer.
// Renderers that need a window system live in the window and term
// subpackages.
package screen

const (
	Width  = 64
	Height = 32
)

// Framebuffer is the 64x32 grid of pixel states. Pixels are only ever
// toggled by sprites or all cleared at once.
type Framebuffer struct {
	cells [Height][Width]bool
}

// Clear turns every pixel off.
func (f *Framebuffer) Clear() {
	f.cells = [Height][Width]bool{}
}

// Pixel returns the state of the pixel at row, col. Out of range
// coordinates are off.
func (f *Framebuffer) Pixel(row, col int) bool {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return false
	}
	return f.cells[row][col]
}

// Lit returns the number of pixels that are on.
func (f *Framebuffer) Lit() int {
	count := 0
	for row := range f.cells {
		for col := range f.cells[row] {
			if f.cells[row][col] {
				count++
			}
		}
	}
	return count
}

// DrawSprite XORs sprite rows onto the grid, most significant bit first. The
// start position wraps around the screen, the sprite itself is clipped at
// the right and bottom edges. It reports whether any lit pixel was turned
// off.
func (f *Framebuffer) DrawSprite(x, y uint8, sprite []uint8) bool {
	startCol := int(x) % Width
	startRow := int(y) % Height
	collision := false

	for i, data := range sprite {
		row := startRow + i
		if row >= Height {
			break
		}
		for j := 0; j < 8; j++ {
			col := startCol + j
			if col >= Width {
				break
			}
			if data&(0x80>>j) == 0 {
				continue
			}
			if f.cells[row][col] {
				collision = true
			}
			f.cells[row][col] = !f.cells[row][col]
		}
	}
	return collision
}
