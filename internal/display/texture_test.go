package display

import (
	"errors"
	"path/filepath"
	"testing"
)

// fakeCache wires a cache to an in-memory filesystem and a counting loader.
func fakeCache(files map[string]bool, env map[string]string) *TextureCache {
	var next uint32
	c := NewTextureCache(func(path string) (uint32, error) {
		if !files[path] {
			return 0, errors.New("missing")
		}
		next++
		return next, nil
	})
	c.exists = func(path string) bool { return files[path] }
	c.getenv = func(key string) string { return env[key] }
	return c
}

func here(name string) string { return filepath.Join(".", name) }

func TestCacheDeduplicatesHandles(t *testing.T) {
	files := map[string]bool{
		here(markerFile):    true,
		here("star1.png"):   true,
		here("planet1.png"): true,
	}
	c := fakeCache(files, nil)

	names := []string{"star1", "star1", "planet1", "star1"}
	if err := c.Ensure(names); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if !c.Ready() {
		t.Fatal("cache should be ready")
	}
	if c.Handle("star1") != c.Handle("star1") || c.Handle("star1") == 0 {
		t.Error("identical names must share a handle")
	}
	if c.Handle("star1") == c.Handle("planet1") {
		t.Error("distinct names must not share a handle")
	}
	if c.Loads() != 2 {
		t.Errorf("load count %d, want one per distinct name (2)", c.Loads())
	}
}

func TestCachePathProbeOrder(t *testing.T) {
	// Marker two levels up in resources; nothing closer.
	files := map[string]bool{
		filepath.Join("..", "..", "resources", markerFile):  true,
		filepath.Join("..", "..", "resources", "star1.png"): true,
	}
	c := fakeCache(files, nil)
	if err := c.Ensure([]string{"star1"}); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if c.dir != filepath.Join("..", "..", "resources") {
		t.Errorf("resolved %q", c.dir)
	}
}

func TestCacheEnvOverrideLastResort(t *testing.T) {
	files := map[string]bool{
		filepath.Join("/opt/gravview", "resources", markerFile):  true,
		filepath.Join("/opt/gravview", "resources", "star1.png"): true,
	}
	c := fakeCache(files, map[string]string{EnvInstallDir: "/opt/gravview"})
	if err := c.Ensure([]string{"star1"}); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if c.dir != filepath.Join("/opt/gravview", "resources") {
		t.Errorf("resolved %q", c.dir)
	}
}

func TestCacheDisabledNoPath(t *testing.T) {
	c := fakeCache(map[string]bool{}, nil)
	if err := c.Ensure([]string{"star1"}); !errors.Is(err, ErrNoTexturePath) {
		t.Fatalf("want ErrNoTexturePath, got %v", err)
	}
	if c.Disabled() == nil {
		t.Error("reason should be recorded")
	}
	// Disabled caches answer from the recorded reason without re-probing.
	if err := c.Ensure([]string{"star1"}); !errors.Is(err, ErrNoTexturePath) {
		t.Errorf("repeat ensure: %v", err)
	}
}

func TestCacheDisabledNoTable(t *testing.T) {
	files := map[string]bool{here(markerFile): true}
	c := fakeCache(files, nil)
	if err := c.Ensure(nil); !errors.Is(err, ErrNoTextureTable) {
		t.Fatalf("want ErrNoTextureTable, got %v", err)
	}
}

func TestCacheResetRetries(t *testing.T) {
	files := map[string]bool{}
	c := fakeCache(files, nil)
	if err := c.Ensure([]string{"star1"}); err == nil {
		t.Fatal("expected failure")
	}

	// The marker appears later; a reset must rerun the full resolution.
	files[here(markerFile)] = true
	files[here("star1.png")] = true
	c.Reset()
	if err := c.Ensure([]string{"star1"}); err != nil {
		t.Fatalf("ensure after reset: %v", err)
	}
	if !c.Ready() || c.Loads() != 1 {
		t.Errorf("ready=%v loads=%d", c.Ready(), c.Loads())
	}
}
