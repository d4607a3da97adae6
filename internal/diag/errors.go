package diag

import "errors"

// ErrNoPrimary is returned when an orbit dump is requested for a
// simulation with no particles to serve as the central body.
var ErrNoPrimary = errors.New("diag: no primary particle")
