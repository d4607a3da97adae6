package sim

import "errors"

var (
	// ErrUnknownPreset indicates a preset name with no registered builder.
	ErrUnknownPreset = errors.New("sim: unknown preset")
)
