// Package octree builds a spatial partition of the particle set for the
// tree overlay. Nodes live in a flat arena and reference children by index,
// so walks never chase ambiguous pointers.
package octree

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/sankalp-v/gravview/internal/boundary"
	"github.com/sankalp-v/gravview/internal/sim"
)

// NoChild marks an empty child slot.
const NoChild int32 = -1

// minWidth stops subdivision around coincident particles.
const minWidth = 1e-12

// Node is one cell of the partition. Width is the full edge length of the
// bounding cube. Mass and COM aggregate everything below the node.
type Node struct {
	Center   mgl64.Vec3
	Width    float64
	Children [8]int32
	Particle int32 // leaf particle index, NoChild for internal/empty nodes
	Mass     float64
	COM      mgl64.Vec3
}

// Leaf reports whether the node holds at most one particle.
func (n *Node) Leaf() bool {
	for _, c := range n.Children {
		if c != NoChild {
			return false
		}
	}
	return true
}

// Tree is an arena of nodes with a set of root indices.
type Tree struct {
	Nodes []Node
	Roots []int32
}

// Build partitions the particles inside the domain box. Particles outside
// the box are skipped; with open boundaries the box is grown to fit first.
func Build(particles []sim.Particle, box boundary.Box, open bool) *Tree {
	w := box.Max()
	if open {
		for i := range particles {
			for ax := 0; ax < 3; ax++ {
				if d := 2.001 * abs(particles[i].Pos[ax]); d > w {
					w = d
				}
			}
		}
	}
	t := &Tree{Nodes: make([]Node, 0, 2*len(particles))}
	root := t.newNode(mgl64.Vec3{}, w)
	t.Roots = []int32{root}
	for i := range particles {
		if inside(particles[i].Pos, t.Nodes[root].Center, w) {
			t.insert(root, particles, int32(i))
		}
	}
	t.aggregate(root, particles)
	return t
}

func (t *Tree) newNode(center mgl64.Vec3, width float64) int32 {
	n := Node{Center: center, Width: width, Particle: NoChild}
	for i := range n.Children {
		n.Children[i] = NoChild
	}
	t.Nodes = append(t.Nodes, n)
	return int32(len(t.Nodes) - 1)
}

func (t *Tree) insert(ni int32, particles []sim.Particle, pi int32) {
	n := &t.Nodes[ni]
	if n.Leaf() {
		if n.Particle == NoChild {
			n.Particle = pi
			return
		}
		if n.Width < minWidth {
			// Coincident particles; keep the first.
			return
		}
		// Push the resident particle down before descending. The arena
		// may grow here, so work with indices from now on.
		old := n.Particle
		n.Particle = NoChild
		t.insertChild(ni, particles, old)
	}
	t.insertChild(ni, particles, pi)
}

func (t *Tree) insertChild(ni int32, particles []sim.Particle, pi int32) {
	oct := octant(particles[pi].Pos, t.Nodes[ni].Center)
	ci := t.Nodes[ni].Children[oct]
	if ci == NoChild {
		ci = t.newNode(childCenter(t.Nodes[ni].Center, t.Nodes[ni].Width, oct), t.Nodes[ni].Width/2)
		t.Nodes[ni].Children[oct] = ci
	}
	t.insert(ci, particles, pi)
}

func (t *Tree) aggregate(ni int32, particles []sim.Particle) (mass float64, com mgl64.Vec3) {
	n := &t.Nodes[ni]
	if n.Particle != NoChild {
		p := particles[n.Particle]
		n.Mass, n.COM = p.Mass, p.Pos
		return n.Mass, n.COM
	}
	var m float64
	var weighted mgl64.Vec3
	for _, ci := range n.Children {
		if ci == NoChild {
			continue
		}
		cm, ccom := t.aggregate(ci, particles)
		m += cm
		weighted = weighted.Add(ccom.Mul(cm))
	}
	n.Mass = m
	if m > 0 {
		n.COM = weighted.Mul(1 / m)
	} else {
		n.COM = n.Center
	}
	return n.Mass, n.COM
}

// Walk visits every node reachable from the roots, parents before children.
func (t *Tree) Walk(visit func(*Node)) {
	var rec func(int32)
	rec = func(ni int32) {
		visit(&t.Nodes[ni])
		for _, ci := range t.Nodes[ni].Children {
			if ci != NoChild {
				rec(ci)
			}
		}
	}
	for _, r := range t.Roots {
		rec(r)
	}
}

func octant(p, center mgl64.Vec3) int {
	o := 0
	if p.X() > center.X() {
		o |= 1
	}
	if p.Y() > center.Y() {
		o |= 2
	}
	if p.Z() > center.Z() {
		o |= 4
	}
	return o
}

func childCenter(center mgl64.Vec3, width float64, oct int) mgl64.Vec3 {
	q := width / 4
	c := center
	if oct&1 != 0 {
		c[0] += q
	} else {
		c[0] -= q
	}
	if oct&2 != 0 {
		c[1] += q
	} else {
		c[1] -= q
	}
	if oct&4 != 0 {
		c[2] += q
	} else {
		c[2] -= q
	}
	return c
}

func inside(p, center mgl64.Vec3, width float64) bool {
	h := width / 2
	for ax := 0; ax < 3; ax++ {
		if p[ax] < center[ax]-h || p[ax] > center[ax]+h {
			return false
		}
	}
	return true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
