package metrics

import (
	"fmt"
	"maps"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/modgraph/pkg/depgraph"
)

// RGB is an 8-bit color.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// CSS returns the color as "#rrggbb".
func (c RGB) CSS() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Brightness is the W3C perceived brightness, from 0 to 255.
func Brightness(c RGB) float64 {
	return (299*float64(c.R) + 587*float64(c.G) + 114*float64(c.B)) / 1000
}

// BrightnessDiff is the absolute brightness difference of a and b. A
// difference above 125 reads well.
func BrightnessDiff(a, b RGB) float64 {
	d := Brightness(a) - Brightness(b)
	if d < 0 {
		return -d
	}
	return d
}

// ColorDiff is the W3C color difference, the sum of per-channel absolute
// differences (0 to 765).
func ColorDiff(a, b RGB) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

func absDiff(x, y uint8) int {
	if x > y {
		return int(x - y)
	}
	return int(y - x)
}

// Foreground returns the option that stands out most against bg by
// brightness. Ties go to the earlier option. It returns bg itself when
// options is empty.
func Foreground(bg RGB, options ...RGB) RGB {
	best, bestDiff := bg, -1.0
	for _, c := range options {
		if d := BrightnessDiff(bg, c); d > bestDiff {
			best, bestDiff = c, d
		}
	}
	return best
}

// DistinctHues returns n hues in degrees, equally spaced around the color
// wheel starting at start.
func DistinctHues(n int, start float64) []float64 {
	hues := make([]float64, n)
	for i := range n {
		h := start + 360*float64(i)/float64(n)
		for h >= 360 {
			h -= 360
		}
		for h < 0 {
			h += 360
		}
		hues[i] = h
	}
	return hues
}

// ColorSpace assigns every top-level package its own hue. Modules of the
// same package share the hue and differ in saturation and lightness by
// how connected they are.
type ColorSpace struct {
	hues map[string]float64
}

// NewColorSpace spreads hues over the packages of nodes, starting at start
// degrees. Packages are taken in name order, so the result only depends on
// the set of names.
func NewColorSpace(nodes []*depgraph.Node, start float64) *ColorSpace {
	keys := make(map[string]struct{})
	for _, n := range nodes {
		keys[colorKey(n)] = struct{}{}
	}
	sorted := slices.Sorted(maps.Keys(keys))
	hues := DistinctHues(len(sorted), start)

	cs := &ColorSpace{hues: make(map[string]float64, len(sorted))}
	for i, k := range sorted {
		cs.hues[k] = hues[i]
	}
	return cs
}

func colorKey(n *depgraph.Node) string {
	if n.Kind == depgraph.KindPackageDir {
		return n.Name
	}
	return n.TopLevel()
}

// Color returns the fill and text colors for n. Modules imported by many
// others get more saturated, modules importing many others get darker. A
// node whose package was not known to [NewColorSpace] uses hue 0.
func (cs *ColorSpace) Color(n *depgraph.Node) (bg, fg RGB) {
	hue := cs.hues[colorKey(n)]
	sat := min(0.95, 0.4+0.1*float64(n.OutDegree()-1))
	light := max(0.3, 0.5-0.02*float64(n.InDegree()-1))

	r, g, b := colorful.Hsl(hue, sat, light).Clamped().RGB255()
	bg = RGB{r, g, b}
	return bg, Foreground(bg, Black, White)
}
