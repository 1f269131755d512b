// Package render draws the two demonstration scenes onto a Braille-cell
// canvas for the terminal front-end.
//
//   - [Canvas]: 2x4 sub-pixel Braille grid with line, circle, and arrow
//     primitives plus text labels overlaid on cells
//   - [Viewport]: world-space to canvas mapping, and the inverse used to
//     turn mouse cells back into world coordinates
//   - [HammerScene] / [OrbitScene]: per-frame painters reading the scenario
//     state records
//
// The force-arrow pairs for both scenes are built by [HammerArrows] and
// [OrbitArrows]; each pair takes its length from the scenario's single force
// field, which is what keeps the action and reaction arrows visually equal.
package render
