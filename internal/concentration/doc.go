// Package concentration models the concentration screen: a beaker of
// solution fed by faucets, a dropper of stock solution, a shaker of solid
// solute and an evaporator.
//
// All state lives in reactive values. Input devices change rates, and
// [Model.Step] integrates those rates into the solution in a fixed order.
// Everything else (concentration, precipitate, colors, particles, the
// meter reading) follows from the dependency graph.
//
// Coordinates are model units with y pointing down. The beaker location is
// the center of its bottom edge.
package concentration
