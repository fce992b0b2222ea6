package wordgraph

// Separator divides the first letter of a rotated entry from the rest of
// the word.
const Separator = '#'

// Rotated reads a graph built from rotated entries, where every word w is
// also stored as w[0] + "#" + w[1:]. Descending from the root by a letter
// follows both that letter and the separator, so callers walk it exactly
// like a plain graph and never see the separator.
type Rotated struct {
	g *Graph
}

// NewRotated wraps g. g must have been built in rotated mode.
func NewRotated(g *Graph) *Rotated {
	return &Rotated{g: g}
}

// Graph returns the underlying node arena.
func (r *Rotated) Graph() *Graph {
	return r.g
}

func (r *Rotated) RootNodeIndex() uint32 {
	return r.g.RootNodeIndex()
}

func (r *Rotated) NextNodeIdx(nodeIdx uint32, letter rune) uint32 {
	if nodeIdx != r.g.RootNodeIndex() {
		return r.g.NextNodeIdx(nodeIdx, letter)
	}
	first := r.g.NextNodeIdx(nodeIdx, letter)
	if first == NullNodeIndex {
		return NullNodeIndex
	}
	return r.g.NextNodeIdx(first, Separator)
}

func (r *Rotated) IsTerminal(nodeIdx uint32) bool {
	return r.g.IsTerminal(nodeIdx)
}

func (r *Rotated) IterateChildren(nodeIdx uint32, cb func(letter rune, childIdx uint32)) {
	if nodeIdx != r.g.RootNodeIndex() {
		r.g.IterateChildren(nodeIdx, cb)
		return
	}
	r.g.IterateChildren(nodeIdx, func(letter rune, childIdx uint32) {
		if next := r.g.NextNodeIdx(childIdx, Separator); next != NullNodeIndex {
			cb(letter, next)
		}
	})
}

// IsWord checks the word as written; the constraint sees the word, not its
// rotated form.
func (r *Rotated) IsWord(word string) bool {
	if word == "" {
		return false
	}
	return isWord(r, word)
}

func (r *Rotated) Accepts(word string) bool {
	return r.g.Accepts(word)
}

func (r *Rotated) WithConstraint(v Validator) *Rotated {
	return &Rotated{g: r.g.WithConstraint(v)}
}

func (r *Rotated) Unconstrained() WordGraph {
	if r.g.validator == nil {
		return r
	}
	return r.WithConstraint(nil)
}

func (r *Rotated) LexiconName() string {
	return r.g.LexiconName()
}
