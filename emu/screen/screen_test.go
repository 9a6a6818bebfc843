package screen

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

var square = []uint8{0xFF, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0xFF}

func TestDrawSpriteMostSignificantBitFirst(t *testing.T) {
	var fb Framebuffer

	collision := fb.DrawSprite(0, 0, []uint8{0x80, 0x01})
	assert.False(t, collision)
	assert.True(t, fb.Pixel(0, 0))
	assert.False(t, fb.Pixel(0, 7))
	assert.True(t, fb.Pixel(1, 7))
	assert.False(t, fb.Pixel(1, 0))
	assert.Equal(t, 2, fb.Lit())
}

func TestDrawSpriteTwiceRestores(t *testing.T) {
	var fb Framebuffer
	fb.DrawSprite(3, 3, []uint8{0xF0})
	before := fb

	assert.False(t, fb.DrawSprite(1, 2, square))
	assert.True(t, fb.DrawSprite(1, 2, square))
	assert.Equal(t, before, fb)
}

func TestDrawSpriteCollision(t *testing.T) {
	var fb Framebuffer

	assert.False(t, fb.DrawSprite(10, 10, []uint8{0x0F}))
	assert.False(t, fb.DrawSprite(10, 10, []uint8{0xF0}))
	assert.True(t, fb.DrawSprite(10, 10, []uint8{0x18}))
	assert.False(t, fb.Pixel(10, 13))
	assert.False(t, fb.Pixel(10, 14))
}

func TestDrawSpriteWrapsStartPosition(t *testing.T) {
	var fb Framebuffer

	fb.DrawSprite(Width+2, Height+1, []uint8{0x80})
	assert.True(t, fb.Pixel(1, 2))
	assert.Equal(t, 1, fb.Lit())
}

func TestDrawSpriteClipsAtEdges(t *testing.T) {
	var fb Framebuffer

	fb.DrawSprite(Width-1, 0, []uint8{0xFF, 0xFF, 0xFF})
	assert.Equal(t, 3, fb.Lit())
	for row := 0; row < 3; row++ {
		assert.True(t, fb.Pixel(row, Width-1))
		assert.False(t, fb.Pixel(row+1, 0))
		assert.False(t, fb.Pixel(row, 0))
	}

	fb.Clear()
	fb.DrawSprite(0, Height-1, square)
	assert.Equal(t, 8, fb.Lit())
	for col := 0; col < 8; col++ {
		assert.True(t, fb.Pixel(Height-1, col))
		assert.False(t, fb.Pixel(0, col))
	}

	fb.Clear()
	fb.DrawSprite(Width-4, Height-2, square)
	assert.Equal(t, 4+1, fb.Lit())
}

func TestClearIsIdempotentReset(t *testing.T) {
	var fb Framebuffer

	fb.Clear()
	fb.DrawSprite(5, 5, square)
	assert.True(t, fb.Lit() > 0)

	fb.Clear()
	assert.Equal(t, 0, fb.Lit())
	assert.Equal(t, Framebuffer{}, fb)
}

func TestPixelOutOfRange(t *testing.T) {
	var fb Framebuffer
	fb.DrawSprite(0, 0, []uint8{0x80})

	assert.False(t, fb.Pixel(-1, 0))
	assert.False(t, fb.Pixel(0, Width))
	assert.False(t, fb.Pixel(Height, 0))
}

func TestHeadless(t *testing.T) {
	var display Headless

	assert.NoError(t, display.Refresh(&Framebuffer{}))
	assert.False(t, display.Closed())
}
