package solute

// Solvent is the liquid solutes dissolve in.
type Solvent struct {
	Name    string
	Formula string
	Color   Color
	Density float64 // g/L
}

var Water = Solvent{
	Name:    "water",
	Formula: "H2O",
	Color:   RGB(224, 240, 255),
	Density: 1000,
}
