package beerslaw

import "math"

// AbsorbanceAt applies the Beer-Lambert law, A = εbc.
func AbsorbanceAt(pathLength, concentration, molarAbsorptivity float64) float64 {
	return molarAbsorptivity * concentration * pathLength
}

// TransmittanceAt returns the transmitted fraction of light, T = 10^-A.
func TransmittanceAt(pathLength, concentration, molarAbsorptivity float64) float64 {
	return Transmittance(AbsorbanceAt(pathLength, concentration, molarAbsorptivity))
}

// Transmittance converts absorbance to transmittance.
func Transmittance(absorbance float64) float64 { return math.Pow(10, -absorbance) }
