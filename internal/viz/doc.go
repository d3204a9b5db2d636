// Package viz renders the concentration model in the terminal.
//
// [Canvas] is a braille dot canvas and [Scene] draws the beaker, solution,
// particles and devices onto it. [Live] is the interactive bubbletea view:
//
//	W  solvent faucet    D  drain faucet    E  evaporator
//	P  dropper           S  shaker          N  next solute
//	F  solute form       M  meter probe     U  meter units
//	T  theme             Space  pause       R  reset    Q  quit
package viz
