// Package graphmaker compiles word lists into the word graph format read by
// the wordgraph package.
package graphmaker

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordplay/wordgraph"
)

// trieNode is a temporary type used while building. It is not used after
// the graph is serialized.
type trieNode struct {
	letter   byte
	terminal bool
	children []*trieNode
}

func (n *trieNode) child(letter byte) *trieNode {
	i, found := slices.BinarySearchFunc(n.children, letter, func(c *trieNode, l byte) int {
		return cmp.Compare(c.letter, l)
	})
	if found {
		return n.children[i]
	}
	c := &trieNode{letter: letter}
	n.children = slices.Insert(n.children, i, c)
	return c
}

func (n *trieNode) add(word []byte) {
	cur := n
	for _, l := range word {
		cur = cur.child(l)
	}
	cur.terminal = true
}

// toBytes turns an already-normalized word into the graph's single-byte
// letters.
func toBytes(word string) ([]byte, error) {
	bs := make([]byte, 0, len(word))
	for _, r := range word {
		if r > 0xff {
			return nil, fmt.Errorf("word %q: letter %q does not fit in a byte", word, r)
		}
		bs = append(bs, byte(r))
	}
	return bs, nil
}

// Make builds the node table for a set of words. With rotated set every
// rotation of every word is stored instead (see Rotations). Duplicates are
// ignored.
func Make(words []string, rotated bool) ([]wordgraph.NodeRecord, error) {
	entries := words
	if rotated {
		entries = lo.FlatMap(words, func(w string, _ int) []string {
			return Rotations(w)
		})
	}
	entries = lo.Uniq(entries)
	slices.Sort(entries)

	root := &trieNode{letter: '@'}
	for _, e := range entries {
		if e == "" {
			continue
		}
		bs, err := toBytes(e)
		if err != nil {
			return nil, err
		}
		root.add(bs)
	}
	log.Debug().Int("entries", len(entries)).Bool("rotated", rotated).Msg("built-trie")

	m := newMinimizer()
	return m.serialize(m.add(root)), nil
}

// MakeGraph builds a graph in memory. Words are normalized first.
func MakeGraph(words []string, rotated bool) (*wordgraph.Graph, error) {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		n, err := NormalizeWord(w)
		if err != nil {
			return nil, err
		}
		if n != "" {
			normalized = append(normalized, n)
		}
	}
	table, err := Make(normalized, rotated)
	if err != nil {
		return nil, err
	}
	return wordgraph.Build(table)
}

// MakeRotated builds a rotated graph in memory and wraps it for lookups.
func MakeRotated(words []string) (*wordgraph.Rotated, error) {
	g, err := MakeGraph(words, true)
	if err != nil {
		return nil, err
	}
	return wordgraph.NewRotated(g), nil
}

// GenerateFile reads the word list in filename and writes the graph to
// outFilename.
func GenerateFile(filename, outFilename string, rotated, latin1 bool) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	words, err := ReadWordList(f, latin1)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	table, err := Make(words, rotated)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := wordgraph.WriteGraph(&buf, table); err != nil {
		return err
	}
	if err := os.WriteFile(outFilename, buf.Bytes(), 0644); err != nil {
		return err
	}
	log.Info().Str("filename", outFilename).Int("words", len(words)).
		Int("nodes", len(table)).Msg("wrote-graph")
	return nil
}
