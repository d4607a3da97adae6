// Package display is the real-time visualization engine: it renders the live
// particle state of a running simulation in an interactive 3D viewport,
// overlays orbits, spatial-partition cells and periodic ghost images, and
// captures frames to PNG on demand.
//
// The engine is single-threaded and cooperative. Each tick steps the
// simulation and then renders, in that order, on the same goroutine; the
// particle slice is therefore never read while it is being mutated. There is
// no locking — that absence is a scheduling invariant owned by [Scheduler].
//
// All mutable render state lives in an explicit [State] owned by the
// [Engine]; there are no package-level globals.
package display
