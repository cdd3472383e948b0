package metrics

import "strings"

// maxDepth is the number of leading name segments the metrics look at.
const maxDepth = 4

// Proximity scores how related two module names are, from 1 (unrelated)
// to 4 (very related). It counts the positions among the first four
// dotted segments where both names agree, stopping at the shorter name.
func Proximity(a, b string) int {
	ap, bp := strings.Split(a, "."), strings.Split(b, ".")
	n := min(len(ap), len(bp), maxDepth)

	res := 0
	for i := range n {
		if ap[i] == bp[i] {
			res++
		}
	}
	if res == 0 {
		return 1
	}
	return min(res, maxDepth)
}

// Dissimilarity scores how unrelated two module names are, from 1 to 4.
// It is used as the minimum edge length in ranks. Positions past the end
// of both names count as equal, so "a" and "b" score 1.
func Dissimilarity(a, b string) int {
	ap, bp := strings.Split(a, "."), strings.Split(b, ".")

	res := maxDepth
	for i := range maxDepth {
		if segment(ap, i) == segment(bp, i) {
			res--
		}
	}
	return max(res, 1)
}

// segment returns parts[i], or a value no real segment can equal.
func segment(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return "\x00"
}

// EdgeWeight returns the layout weight of module a importing module b.
// Private counterparts ("x" importing "_x") are pulled tightest, then
// imports of private modules.
func EdgeWeight(a, b string) int {
	if "_"+a == b {
		return 6
	}
	last := b
	if i := strings.LastIndexByte(b, '.'); i >= 0 {
		last = b[i+1:]
	}
	if strings.HasPrefix(last, "_") {
		return 4
	}
	return 1
}
