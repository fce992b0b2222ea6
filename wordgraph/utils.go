package wordgraph

import "slices"

// FindWord is true if word is in the dictionary, ignoring any constraint.
func FindWord(g WordGraph, word string) bool {
	return g.Unconstrained().IsWord(word)
}

// Words lists every word in the graph that the constraint accepts, sorted.
// maxLength bounds the walk.
func Words(g WordGraph, maxLength int) []string {
	var words []string
	var prefix []rune
	var walk func(nodeIdx uint32)
	walk = func(nodeIdx uint32) {
		if len(prefix) >= maxLength {
			return
		}
		g.IterateChildren(nodeIdx, func(letter rune, childIdx uint32) {
			prefix = append(prefix, letter)
			if g.IsTerminal(childIdx) {
				w := string(prefix)
				if g.Accepts(w) {
					words = append(words, w)
				}
			}
			walk(childIdx)
			prefix = prefix[:len(prefix)-1]
		})
	}
	walk(g.RootNodeIndex())
	slices.Sort(words)
	return words
}

// Constrain returns g filtered by v. A nil v removes any constraint.
func Constrain(g WordGraph, v Validator) WordGraph {
	switch gg := g.(type) {
	case *Graph:
		return gg.WithConstraint(v)
	case *Rotated:
		return gg.WithConstraint(v)
	}
	if v == nil {
		return g.Unconstrained()
	}
	return &constrained{WordGraph: g.Unconstrained(), v: v}
}

// constrained adds a validator to a graph type this package does not know.
type constrained struct {
	WordGraph
	v Validator
}

func (c *constrained) Accepts(word string) bool {
	return c.v.Validate(word)
}

func (c *constrained) IsWord(word string) bool {
	return word != "" && isWord(c, word)
}

func (c *constrained) Unconstrained() WordGraph {
	return c.WordGraph
}
