package display

import (
	"errors"
	"os"
	"path/filepath"
)

// markerFile must exist in a directory for it to qualify as the texture
// search root.
const markerFile = "star1.png"

// EnvInstallDir names the environment variable holding a base installation
// directory, probed as the last-resort texture search root.
const EnvInstallDir = "GRAVVIEW"

var (
	// ErrNoTexturePath means no candidate directory contained the marker
	// file. Recorded, never fatal: textured mode degrades to spheres.
	ErrNoTexturePath = errors.New("display: cannot find texture path, set the " + EnvInstallDir + " environment variable")

	// ErrNoTextureTable means textured mode was selected but the caller
	// supplied no per-particle texture names.
	ErrNoTextureTable = errors.New("display: no texture table supplied for textured mode")
)

// cacheState tracks the texture cache lifecycle.
type cacheState int

const (
	cacheUninitialized cacheState = iota
	cacheDisabled
	cacheReady
)

// LoadFunc loads one texture file and returns its GPU handle. Injected so
// tests can count loads without a GL context.
type LoadFunc func(path string) (uint32, error)

// TextureCache resolves the texture search path once and loads each distinct
// texture name exactly once. Two particles with equal name strings share a
// handle; first-seen wins.
type TextureCache struct {
	state   cacheState
	reason  error
	dir     string
	load    LoadFunc
	exists  func(string) bool
	getenv  func(string) string
	handles map[string]uint32
	loads   int
}

// NewTextureCache builds an uninitialized cache around a loader.
func NewTextureCache(load LoadFunc) *TextureCache {
	return &TextureCache{
		load: load,
		exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
		getenv:  os.Getenv,
		handles: make(map[string]uint32),
	}
}

// findPath probes the candidate roots in fixed priority order: the current
// directory, one level up, a resources subdirectory at each of the first two
// levels, then the configured install directory and its resources
// subdirectory. The first candidate containing the marker file wins.
func (c *TextureCache) findPath() (string, bool) {
	candidates := []string{".", "..", filepath.Join("..", "resources"), filepath.Join("..", ".."), filepath.Join("..", "..", "resources")}
	if root := c.getenv(EnvInstallDir); root != "" {
		candidates = append(candidates, root, filepath.Join(root, "resources"))
	}
	for _, dir := range candidates {
		if c.exists(filepath.Join(dir, markerFile)) {
			return dir, true
		}
	}
	return "", false
}

// Ensure moves the cache toward Ready for the given per-particle name table.
// Called on entry to textured mode; while still uninitialized every entry
// retries the full resolution. A disabled cache keeps returning its recorded
// reason without touching the disk.
func (c *TextureCache) Ensure(names []string) error {
	switch c.state {
	case cacheReady:
		return nil
	case cacheDisabled:
		return c.reason
	}
	if len(names) == 0 {
		c.state, c.reason = cacheDisabled, ErrNoTextureTable
		return c.reason
	}
	dir, ok := c.findPath()
	if !ok {
		c.state, c.reason = cacheDisabled, ErrNoTexturePath
		return c.reason
	}
	c.dir = dir
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, dup := c.handles[name]; dup {
			continue
		}
		h, err := c.load(filepath.Join(dir, name+".png"))
		if err != nil {
			// A missing individual texture falls back to the first
			// loaded handle rather than disabling the whole mode.
			continue
		}
		c.loads++
		c.handles[name] = h
	}
	if len(c.handles) == 0 {
		c.state, c.reason = cacheDisabled, ErrNoTexturePath
		return c.reason
	}
	c.state = cacheReady
	return nil
}

// Handle returns the texture for name, or the zero handle when unknown.
func (c *TextureCache) Handle(name string) uint32 {
	return c.handles[name]
}

// Ready reports whether the cache finished loading.
func (c *TextureCache) Ready() bool { return c.state == cacheReady }

// Disabled returns the recorded degradation reason, or nil.
func (c *TextureCache) Disabled() error {
	if c.state == cacheDisabled {
		return c.reason
	}
	return nil
}

// Loads returns how many disk loads the cache performed.
func (c *TextureCache) Loads() int { return c.loads }

// Reset forces the cache back to Uninitialized, dropping handles and the
// recorded reason. The next Ensure re-resolves everything.
func (c *TextureCache) Reset() {
	c.state, c.reason, c.dir = cacheUninitialized, nil, ""
	c.handles = make(map[string]uint32)
	c.loads = 0
}
