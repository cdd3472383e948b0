// Package metrics scores module names for layout and colors nodes.
//
// [Proximity] and [Dissimilarity] compare dotted names segment by segment;
// the renderer uses them as edge weight and minimum edge length.
// [EdgeWeight] pulls private counterparts together.
//
// [ColorSpace] gives each top-level package a distinct hue. Saturation
// grows with the number of importers and lightness falls with the number
// of imports, and the text color is whichever of black or white contrasts
// most with the fill ([Foreground]).
package metrics
