package wordgraph

// Validator is a filter applied on top of dictionary membership. A word is
// only a word if the graph contains it and the validator accepts it.
type Validator interface {
	Validate(word string) bool
}

// WordGraph is what the move generators need from a dictionary. Node
// indices are opaque; 0 always means "no node".
type WordGraph interface {
	RootNodeIndex() uint32
	NextNodeIdx(nodeIdx uint32, letter rune) uint32
	IsTerminal(nodeIdx uint32) bool
	IterateChildren(nodeIdx uint32, cb func(letter rune, childIdx uint32))
	// IsWord checks membership and the active constraint.
	IsWord(word string) bool
	// Accepts checks the active constraint only.
	Accepts(word string) bool
	// Unconstrained returns the same dictionary with no constraint.
	Unconstrained() WordGraph
	LexiconName() string
}
