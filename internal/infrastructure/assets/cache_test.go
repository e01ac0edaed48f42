package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"sprites/coin-1.png": {Data: pngBytes(t, 4, 4)},
		"sprites/coin-2.png": {Data: pngBytes(t, 8, 2)},
		"sprites/broken.png": {Data: []byte("not a png")},
	}
}

func TestCache_DecodesInBackground(t *testing.T) {
	c := NewCache(testFS(t))
	c.Preload("sprites/coin-1.png", "sprites/coin-2.png")
	c.Wait()

	img, ok := c.Decoded("sprites/coin-2.png")
	require.True(t, ok)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 2, c.Len())
}

func TestCache_FirstUseStartsDecode(t *testing.T) {
	c := NewCache(testFS(t))
	_, _ = c.Decoded("sprites/coin-1.png")
	c.Wait()

	_, ok := c.Decoded("sprites/coin-1.png")
	assert.True(t, ok)
}

func TestCache_FailuresAreRemembered(t *testing.T) {
	c := NewCache(testFS(t))
	c.Preload("sprites/broken.png", "sprites/missing.png")
	c.Wait()

	_, ok := c.Decoded("sprites/broken.png")
	assert.False(t, ok)
	assert.ErrorContains(t, c.Err("sprites/broken.png"), "failed to decode image")
	assert.ErrorContains(t, c.Err("sprites/missing.png"), "failed to read image")

	// no second decode is started
	assert.Equal(t, 2, c.Len())
	assert.NoError(t, c.Err("sprites/never-asked.png"))
}

func TestCache_EmptyPath(t *testing.T) {
	c := NewCache(testFS(t))
	_, ok := c.Decoded("")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_ConcurrentLookups(t *testing.T) {
	c := NewCache(testFS(t))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Preload("sprites/coin-1.png", "assets/sprites/coin-1.png")
		}()
	}
	wg.Wait()
	c.Wait()
	assert.Equal(t, 1, c.Len())
}

func TestCleanAssetPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"sprites/a.png", "sprites/a.png"},
		{"./sprites/a.png", "sprites/a.png"},
		{"/assets/sprites/a.png", "sprites/a.png"},
		{"sprites/../hud/b.png", "hud/b.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanAssetPath(tt.in), tt.in)
	}
}
