package graphmaker

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/wordgraph"
)

// An entry is one node of a child list as it will be serialized: its letter,
// whether a word ends there, and which list holds its own children.
type entry struct {
	letter   byte
	terminal bool
	list     int
}

// minimizer interns child lists, so identical sub-structures are stored
// once. Lists are bucketed by an xxhash of their contents and compared in
// full within a bucket. List 0 is the empty list.
type minimizer struct {
	lists   [][]entry
	buckets map[uint64][]int
	scratch []byte
}

func newMinimizer() *minimizer {
	return &minimizer{
		lists:   [][]entry{nil},
		buckets: make(map[uint64][]int),
	}
}

func (m *minimizer) hash(es []entry) uint64 {
	m.scratch = m.scratch[:0]
	for _, e := range es {
		t := byte(0)
		if e.terminal {
			t = 1
		}
		m.scratch = append(m.scratch, e.letter, t)
		m.scratch = binary.LittleEndian.AppendUint32(m.scratch, uint32(e.list))
	}
	return xxhash.Sum64(m.scratch)
}

func (m *minimizer) intern(es []entry) int {
	if len(es) == 0 {
		return 0
	}
	h := m.hash(es)
	for _, id := range m.buckets[h] {
		if slices.Equal(m.lists[id], es) {
			return id
		}
	}
	m.lists = append(m.lists, es)
	id := len(m.lists) - 1
	m.buckets[h] = append(m.buckets[h], id)
	return id
}

// add interns n's subtree bottom-up and returns the id of its child list.
func (m *minimizer) add(n *trieNode) int {
	if len(n.children) == 0 {
		return 0
	}
	es := make([]entry, len(n.children))
	for i, c := range n.children {
		es[i] = entry{letter: c.letter, terminal: c.terminal, list: m.add(c)}
	}
	return m.intern(es)
}

// serialize lays the lists out breadth-first after the root. Each list
// occupies consecutive records linked through their sibling field.
func (m *minimizer) serialize(rootList int) []wordgraph.NodeRecord {
	head := make([]uint32, len(m.lists))
	var order []int
	next := uint32(2)
	queue := []int{rootList}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == 0 || head[id] != 0 {
			continue
		}
		head[id] = next
		next += uint32(len(m.lists[id]))
		order = append(order, id)
		for _, e := range m.lists[id] {
			if e.list != 0 && head[e.list] == 0 {
				queue = append(queue, e.list)
			}
		}
	}

	table := make([]wordgraph.NodeRecord, next-1)
	table[0] = wordgraph.NodeRecord{Letter: '@', Child: head[rootList]}
	for _, id := range order {
		es := m.lists[id]
		for k, e := range es {
			idx := head[id] + uint32(k)
			rec := wordgraph.NodeRecord{
				Letter:   e.letter,
				Terminal: e.terminal,
				Child:    head[e.list],
			}
			if k < len(es)-1 {
				rec.Sibling = idx + 1
			}
			table[idx-1] = rec
		}
	}
	log.Debug().Int("lists", len(m.lists)-1).Int("nodes", len(table)).Msg("minimized-graph")
	return table
}
