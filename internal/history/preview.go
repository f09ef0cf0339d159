package history

import "github.com/rivo/uniseg"

// Preview returns the first max grapheme clusters of s, appending an
// ellipsis when the text was cut. Counting clusters instead of bytes or
// runes keeps emoji and combining sequences intact.
func Preview(s string, max int) string {
	if max <= 0 || uniseg.GraphemeClusterCount(s) <= max {
		return s
	}
	g := uniseg.NewGraphemes(s)
	out := make([]byte, 0, len(s))
	count := 0
	for g.Next() {
		if count >= max {
			break
		}
		out = append(out, g.Bytes()...)
		count++
	}
	return string(out) + "…"
}
