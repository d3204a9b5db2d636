package concentration

import "errors"

var (
	ErrInvalidTimestep = errors.New("concentration: timestep must be positive and finite")
	ErrNoSolutes       = errors.New("concentration: at least one solute is required")
	ErrInvalidOptions  = errors.New("concentration: invalid options")
)
