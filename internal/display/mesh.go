package display

import "math"

// SphereMesh is a unit-radius latitude/longitude sphere laid out as triangle
// strips. It is built exactly once per engine and shared read-only by every
// particle in a render pass; instances differ only by the transform applied
// around the draw.
type SphereMesh struct {
	Stacks, Slices int

	// Vertices holds xyz triples; on a unit sphere position doubles as
	// the outward normal. UVs holds matching (lon/2π, lat/π) pairs.
	Vertices []float32
	UVs      []float32

	// Indices describes Stacks triangle strips of 2·(Slices+1) indices
	// each, strip i connecting latitude band i to band i+1.
	Indices []uint16
}

// maxResolution bounds stacks and slices so (stacks+1)(slices+1) vertices
// always fit the 16-bit index buffer: 256*256 = 65536.
const maxResolution = 255

// Sphere builds the shared mesh at the given resolution. Degenerate
// resolutions are raised to the smallest closed surface and excessive ones
// clamped to keep vertex indices inside uint16 range.
func Sphere(stacks, slices int) *SphereMesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}
	if stacks > maxResolution {
		stacks = maxResolution
	}
	if slices > maxResolution {
		slices = maxResolution
	}
	m := &SphereMesh{
		Stacks:   stacks,
		Slices:   slices,
		Vertices: make([]float32, 0, 3*(slices+1)*(stacks+1)),
		UVs:      make([]float32, 0, 2*(slices+1)*(stacks+1)),
		Indices:  make([]uint16, 0, 2*(slices+1)*stacks),
	}
	for i := 0; i <= stacks; i++ {
		lat := math.Pi * float64(i) / float64(stacks) // 0 at north pole
		sinLat, cosLat := math.Sincos(lat)
		for j := 0; j <= slices; j++ {
			lon := 2 * math.Pi * float64(j) / float64(slices)
			sinLon, cosLon := math.Sincos(lon)
			m.Vertices = append(m.Vertices,
				float32(sinLat*cosLon),
				float32(sinLat*sinLon),
				float32(cosLat),
			)
			m.UVs = append(m.UVs,
				float32(lon/(2*math.Pi)),
				float32(lat/math.Pi),
			)
		}
	}
	row := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j <= slices; j++ {
			m.Indices = append(m.Indices,
				uint16(i*row+j),
				uint16((i+1)*row+j),
			)
		}
	}
	return m
}

// VertexCount returns the number of vertices in the buffer.
func (m *SphereMesh) VertexCount() int { return len(m.Vertices) / 3 }

// Strip returns the index span of triangle strip i.
func (m *SphereMesh) Strip(i int) []uint16 {
	n := 2 * (m.Slices + 1)
	return m.Indices[i*n : (i+1)*n]
}

// Vertex returns the position of vertex index vi.
func (m *SphereMesh) Vertex(vi uint16) (x, y, z float32) {
	return m.Vertices[3*vi], m.Vertices[3*vi+1], m.Vertices[3*vi+2]
}

// UV returns the texture coordinates of vertex index vi.
func (m *SphereMesh) UV(vi uint16) (u, v float32) {
	return m.UVs[2*vi], m.UVs[2*vi+1]
}
