// Package assets loads sprite images. Decoding runs on background
// goroutines; GPU images are created lazily on the render goroutine.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

type entry struct {
	done bool
	img  image.Image
	err  error
	gpu  *ebiten.Image
}

// Cache is a process-wide, append-only image cache keyed by asset path.
type Cache struct {
	fsys fs.FS

	mu      sync.Mutex
	entries map[string]*entry
	wg      sync.WaitGroup
}

// NewCache creates a cache reading from fsys
func NewCache(fsys fs.FS) *Cache {
	return &Cache{fsys: fsys, entries: make(map[string]*entry)}
}

// Preload starts decoding every path that is not cached yet.
func (c *Cache) Preload(paths ...string) {
	for _, p := range paths {
		c.lookup(p)
	}
}

// Wait blocks until every started decode finished
func (c *Cache) Wait() { c.wg.Wait() }

// Decoded returns the decoded image, starting a decode on first use.
// ok is false while decoding or after a failure.
func (c *Cache) Decoded(p string) (image.Image, bool) {
	e := c.lookup(p)
	if e == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !e.done || e.err != nil {
		return nil, false
	}
	return e.img, true
}

// Err returns the decode error for p, nil while pending or on success
func (c *Cache) Err(p string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[cleanAssetPath(p)]; ok {
		return e.err
	}
	return nil
}

// Len returns the number of cached paths
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Image returns the GPU image for p, or nil while it is not decoded.
// A nil cache has no images. Must be called from the ebiten goroutine.
func (c *Cache) Image(p string) *ebiten.Image {
	if c == nil {
		return nil
	}
	e := c.lookup(p)
	if e == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !e.done || e.err != nil {
		return nil
	}
	if e.gpu == nil {
		e.gpu = ebiten.NewImageFromImage(e.img)
	}
	return e.gpu
}

func (c *Cache) lookup(p string) *entry {
	key := cleanAssetPath(p)
	if key == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		return e
	}
	e := &entry{}
	c.entries[key] = e
	c.wg.Add(1)
	go c.decode(key, e)
	return e
}

func (c *Cache) decode(key string, e *entry) {
	defer c.wg.Done()

	img, err := c.read(key)
	if err != nil {
		log.Printf("Failed to load sprite %s: %v", key, err)
	}

	c.mu.Lock()
	e.img, e.err, e.done = img, err, true
	c.mu.Unlock()
}

func (c *Cache) read(key string) (image.Image, error) {
	b, err := fs.ReadFile(c.fsys, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if r := img.Bounds(); r.Dx() == 0 || r.Dy() == 0 {
		return nil, fmt.Errorf("image has no pixels")
	}
	return img, nil
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	s = strings.TrimPrefix(s, "./")
	s = strings.TrimPrefix(s, "/")
	s = strings.TrimPrefix(s, "assets/")
	return path.Clean(s)
}
