// Package beerslaw models the Beer's Law screen: a light shining through a
// cuvette of colored solution onto a detector that reads absorbance or
// percent transmittance.
//
// Nothing here is stepped. Every reading is derived from the light, the
// cuvette, the selected solution and the detector probe position.
// Distances are in cm.
package beerslaw
