package graphmaker

import "github.com/domino14/wordplay/wordgraph"

// Rotations returns the entries stored for word in rotated mode. Entry i is
// the first i+1 letters reversed, then the separator and the rest of the
// word; the last entry is the whole word reversed with no separator. The
// first entry, w[0]#w[1:], is the one word lookups use.
func Rotations(word string) []string {
	rs := []rune(word)
	out := make([]string, 0, len(rs))
	for i := range rs {
		entry := make([]rune, 0, len(rs)+1)
		for j := i; j >= 0; j-- {
			entry = append(entry, rs[j])
		}
		if i < len(rs)-1 {
			entry = append(entry, wordgraph.Separator)
			entry = append(entry, rs[i+1:]...)
		}
		out = append(out, string(entry))
	}
	return out
}
