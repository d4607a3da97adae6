package capture

import (
	"sync"

	"github.com/go-gl/gl/v4.3-core/gl"
)

var glOnce sync.Once

// glRead pulls the back color buffer over the window's live GL context. It
// must run on the thread that owns the context, i.e. from the render pass.
func glRead(w, h int, buf []byte) error {
	var initErr error
	glOnce.Do(func() { initErr = gl.Init() })
	if initErr != nil {
		return initErr
	}
	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	return nil
}
