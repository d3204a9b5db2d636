package solute

import "errors"

var (
	ErrTableSize            = errors.New("solute: absorptivity table has wrong size")
	ErrWavelengthOutOfRange = errors.New("solute: wavelength outside visible range")
	ErrUnknownSolute        = errors.New("solute: unknown solute")
)
