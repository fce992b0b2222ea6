package wordgraph

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

const (
	// NullNodeIndex means "no node".
	NullNodeIndex uint32 = 0
	// RootIndex is the index of the root node. Its letter is unused.
	RootIndex uint32 = 1

	headerSize = 4
	// letter(1) + sibling(4) + child(4) + terminal(4)
	recordSize = 13
	// Letters are single bytes, so no sibling chain can be longer than this
	// without repeating a letter.
	maxChainLength = 256
)

// FormatError is returned when a serialized graph is malformed. Record is
// the 1-based node record at fault, or 0 for the header/stream as a whole.
type FormatError struct {
	Record int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Record == 0 {
		return "wordgraph: malformed graph: " + e.Reason
	}
	return fmt.Sprintf("wordgraph: malformed graph at node %d: %s", e.Record, e.Reason)
}

// NodeRecord is one node as stored on disk. Sibling and Child are node
// indices (0 for none).
type NodeRecord struct {
	Letter   byte
	Sibling  uint32
	Child    uint32
	Terminal bool
}

type node struct {
	letter   byte
	terminal bool
	sibling  uint32
	child    uint32
}

// Graph is an immutable word graph stored as an arena of nodes. Each node
// points at its first child and its next sibling, so a node's children are
// the sibling chain starting at its child. It is safe for concurrent use.
type Graph struct {
	nodes       []node
	lexiconName string
	validator   Validator
}

// Build creates a graph from an ordered node table; table[i] is node i+1.
// Nothing is returned unless the whole table is well-formed.
func Build(table []NodeRecord) (*Graph, error) {
	n := len(table)
	if n < 1 {
		return nil, &FormatError{Reason: "graph has no root node"}
	}
	nodes := make([]node, n+1)
	for i, rec := range table {
		idx := i + 1
		if rec.Sibling > uint32(n) {
			return nil, &FormatError{Record: idx, Reason: fmt.Sprintf("sibling index %d out of range [0, %d]", rec.Sibling, n)}
		}
		if rec.Child > uint32(n) {
			return nil, &FormatError{Record: idx, Reason: fmt.Sprintf("child index %d out of range [0, %d]", rec.Child, n)}
		}
		nodes[idx] = node{
			letter:   rec.Letter,
			terminal: rec.Terminal,
			sibling:  rec.Sibling,
			child:    rec.Child,
		}
	}
	if err := checkChains(nodes); err != nil {
		return nil, err
	}
	return &Graph{nodes: nodes}, nil
}

// checkChains makes sure every child list terminates and holds each letter
// at most once.
func checkChains(nodes []node) error {
	checked := make(map[uint32]bool)
	for i := 1; i < len(nodes); i++ {
		head := nodes[i].child
		if head == NullNodeIndex || checked[head] {
			continue
		}
		var seen [256]bool
		length := 0
		for c := head; c != NullNodeIndex; c = nodes[c].sibling {
			length++
			if length > maxChainLength {
				return &FormatError{Record: i, Reason: "child list does not terminate"}
			}
			if seen[nodes[c].letter] {
				return &FormatError{Record: i, Reason: fmt.Sprintf("duplicate child letter %q", nodes[c].letter)}
			}
			seen[nodes[c].letter] = true
		}
		checked[head] = true
	}
	return nil
}

// ScanGraph reads a serialized graph: a little-endian uint32 node count N
// followed by N node records. The stream must hold exactly N records.
func ScanGraph(data io.Reader) (*Graph, error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}
	if len(raw) < headerSize {
		return nil, &FormatError{Reason: "stream too short for header"}
	}
	count := binary.LittleEndian.Uint32(raw[:headerSize])
	body := raw[headerSize:]
	if uint64(len(body)) != uint64(count)*recordSize {
		return nil, &FormatError{Reason: fmt.Sprintf(
			"declared %d nodes but stream holds %d bytes of records", count, len(body))}
	}
	table := make([]NodeRecord, count)
	for i := range table {
		rec := body[i*recordSize : (i+1)*recordSize]
		table[i] = NodeRecord{
			Letter:   rec[0],
			Sibling:  binary.LittleEndian.Uint32(rec[1:5]),
			Child:    binary.LittleEndian.Uint32(rec[5:9]),
			Terminal: binary.LittleEndian.Uint32(rec[9:13]) != 0,
		}
	}
	g, err := Build(table)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("num-nodes", len(table)).Msg("loaded-graph")
	return g, nil
}

// WriteGraph serializes a node table in the format ScanGraph reads.
func WriteGraph(w io.Writer, table []NodeRecord) error {
	buf := make([]byte, headerSize+len(table)*recordSize)
	binary.LittleEndian.PutUint32(buf, uint32(len(table)))
	for i, rec := range table {
		b := buf[headerSize+i*recordSize:]
		b[0] = rec.Letter
		binary.LittleEndian.PutUint32(b[1:5], rec.Sibling)
		binary.LittleEndian.PutUint32(b[5:9], rec.Child)
		var term uint32
		if rec.Terminal {
			term = 1
		}
		binary.LittleEndian.PutUint32(b[9:13], term)
	}
	_, err := w.Write(buf)
	return err
}

// Records returns the node table of the graph, the inverse of Build.
func (g *Graph) Records() []NodeRecord {
	table := make([]NodeRecord, len(g.nodes)-1)
	for i := range table {
		n := g.nodes[i+1]
		table[i] = NodeRecord{Letter: n.letter, Sibling: n.sibling, Child: n.child, Terminal: n.terminal}
	}
	return table
}

// NumNodes is the number of nodes, not counting the null sentinel.
func (g *Graph) NumNodes() int {
	return len(g.nodes) - 1
}

func (g *Graph) LexiconName() string {
	return g.lexiconName
}

// SetLexiconName names the graph. Call it before sharing the graph.
func (g *Graph) SetLexiconName(name string) {
	g.lexiconName = name
}

func (g *Graph) RootNodeIndex() uint32 {
	return RootIndex
}

// WithConstraint returns a view of the same dictionary filtered by v. The
// node arena is shared, not copied.
func (g *Graph) WithConstraint(v Validator) *Graph {
	return &Graph{nodes: g.nodes, lexiconName: g.lexiconName, validator: v}
}

func (g *Graph) Unconstrained() WordGraph {
	if g.validator == nil {
		return g
	}
	return g.WithConstraint(nil)
}

func (g *Graph) valid(nodeIdx uint32) bool {
	return nodeIdx != NullNodeIndex && int(nodeIdx) < len(g.nodes)
}

// Letter is the letter on the arc leading into nodeIdx.
func (g *Graph) Letter(nodeIdx uint32) rune {
	if !g.valid(nodeIdx) {
		return 0
	}
	return rune(g.nodes[nodeIdx].letter)
}

func (g *Graph) IsTerminal(nodeIdx uint32) bool {
	return g.valid(nodeIdx) && g.nodes[nodeIdx].terminal
}

// FirstChild returns the first node in nodeIdx's child list.
func (g *Graph) FirstChild(nodeIdx uint32) uint32 {
	if !g.valid(nodeIdx) {
		return NullNodeIndex
	}
	return g.nodes[nodeIdx].child
}

// Sibling returns the next node in the same child list.
func (g *Graph) Sibling(nodeIdx uint32) uint32 {
	if !g.valid(nodeIdx) {
		return NullNodeIndex
	}
	return g.nodes[nodeIdx].sibling
}

// NextNodeIdx returns the child of nodeIdx reached by letter, or 0.
func (g *Graph) NextNodeIdx(nodeIdx uint32, letter rune) uint32 {
	if letter < 0 || letter > 0xff {
		return NullNodeIndex
	}
	for c := g.FirstChild(nodeIdx); c != NullNodeIndex; c = g.nodes[c].sibling {
		if g.nodes[c].letter == byte(letter) {
			return c
		}
	}
	return NullNodeIndex
}

// Child is NextNodeIdx under its arena name.
func (g *Graph) Child(nodeIdx uint32, letter rune) uint32 {
	return g.NextNodeIdx(nodeIdx, letter)
}

// HasChild reports whether nodeIdx has a child for letter.
func (g *Graph) HasChild(nodeIdx uint32, letter rune) bool {
	return g.NextNodeIdx(nodeIdx, letter) != NullNodeIndex
}

func (g *Graph) IterateChildren(nodeIdx uint32, cb func(letter rune, childIdx uint32)) {
	for c := g.FirstChild(nodeIdx); c != NullNodeIndex; c = g.nodes[c].sibling {
		cb(rune(g.nodes[c].letter), c)
	}
}

func (g *Graph) Accepts(word string) bool {
	return g.validator == nil || g.validator.Validate(word)
}

// IsWord is true if the graph spells word from the root to a terminal node
// and the constraint accepts it.
func (g *Graph) IsWord(word string) bool {
	if word == "" {
		return false
	}
	return isWord(g, word)
}

func isWord(g WordGraph, word string) bool {
	idx := g.RootNodeIndex()
	for _, r := range word {
		idx = g.NextNodeIdx(idx, r)
		if idx == NullNodeIndex {
			return false
		}
	}
	return g.IsTerminal(idx) && g.Accepts(word)
}
