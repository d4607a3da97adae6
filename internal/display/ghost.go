package display

import "github.com/sankalp-v/gravview/internal/boundary"

// GhostImages returns the set of periodic-image shifts to render. With the
// ghost-box flag off it yields exactly the identity image regardless of the
// counts; with it on, (2nx+1)(2ny+1)(2nz+1) images. The renderer translates
// by each returned shift and must untranslate with the identical value so
// floating-point error cannot drift across images.
func GhostImages(enabled bool, nx, ny, nz int, t float64, lookup func(i, j, k int, t float64) boundary.Shift) []boundary.Shift {
	g := 0
	if enabled {
		g = 1
	}
	shifts := make([]boundary.Shift, 0, (2*g*nx+1)*(2*g*ny+1)*(2*g*nz+1))
	for i := -g * nx; i <= g*nx; i++ {
		for j := -g * ny; j <= g*ny; j++ {
			for k := -g * nz; k <= g*nz; k++ {
				shifts = append(shifts, lookup(i, j, k, t))
			}
		}
	}
	return shifts
}
