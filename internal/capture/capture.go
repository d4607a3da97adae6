// Package capture reads back the presented frame and encodes it to PNG.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// ReadFunc fills buf with w*h RGB pixels in OpenGL order, row 0 at the
// bottom of the frame. The default reads the GL back buffer; tests inject
// their own.
type ReadFunc func(w, h int, buf []byte) error

// Save reads the current frame and writes it as an 8-bit RGB,
// non-interlaced PNG. The GL row order is flipped so row 0 ends up at the
// top. If the output file cannot be opened the capture is skipped with no
// partial file left behind.
func Save(path string, w, h int, read ReadFunc) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("capture: bad viewport %dx%d", w, h)
	}
	if read == nil {
		read = glRead
	}
	buf := make([]byte, w*h*3)
	if err := read(w, h, buf); err != nil {
		return fmt.Errorf("capture: readback: %w", err)
	}

	// NRGBA with a constant opaque alpha: the stdlib has no RGB-only image
	// type, so the file carries PNG color type 6 instead of 2. Still 8-bit,
	// lossless and non-interlaced.
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := buf[(h-1-y)*w*3:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			dst[x*4+0] = src[x*3+0]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// Recorder hands out zero-padded sequential capture paths so callers need no
// bookkeeping of their own.
type Recorder struct {
	dir string
	n   int
}

// NewRecorder numbers captures inside dir, starting at 000000000.png.
func NewRecorder(dir string) *Recorder {
	if dir == "" {
		dir = "."
	}
	return &Recorder{dir: dir}
}

// Next returns the next capture path and advances the counter.
func (r *Recorder) Next() string {
	path := filepath.Join(r.dir, fmt.Sprintf("%09d.png", r.n))
	r.n++
	return path
}
