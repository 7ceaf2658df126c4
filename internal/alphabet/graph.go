// Package alphabet infers a character ordering from a word list assumed to
// be sorted lexicographically under an unknown alphabet.
//
// The package is split into two stages. Build derives a directed precedence
// graph from adjacent word comparisons: the first differing position between
// two neighboring words asserts that the earlier word's character precedes
// the later word's character. Sort runs Kahn's algorithm over that graph and
// either yields a total order over all distinct characters or reports that a
// cycle makes one impossible. Deduce composes the two.
//
// All iteration orders are pinned to first-seen order in the word list, so
// identical input always produces the identical ordering.
package alphabet

import (
	"github.com/puneeth6796/alien-dictionary/internal/errors"
)

// Graph is a directed precedence graph over the distinct characters of a
// word list. Nodes register in first-seen order; each node's successors keep
// edge insertion order. Isolated characters are still nodes and participate
// in the final ordering.
type Graph struct {
	nodes    []rune
	succ     map[rune][]rune
	edges    map[edge]bool
	inDegree map[rune]int
}

type edge struct {
	from, to rune
}

// Build constructs the precedence graph for a word list. It returns an
// errors.KindOrdering error when an earlier word is a strictly longer
// superset of the word that follows it: no alphabet can sort a word before
// its own proper prefix.
func Build(words []string) (*Graph, error) {
	g := &Graph{
		succ:     make(map[rune][]rune),
		edges:    make(map[edge]bool),
		inDegree: make(map[rune]int),
	}

	for _, w := range words {
		for _, c := range w {
			g.addNode(c)
		}
	}

	for i := 0; i+1 < len(words); i++ {
		if err := g.addConstraint(words[i], words[i+1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *Graph) addNode(c rune) {
	if _, ok := g.inDegree[c]; ok {
		return
	}
	g.nodes = append(g.nodes, c)
	g.inDegree[c] = 0
}

// addConstraint derives at most one edge from an adjacent word pair. Only
// the first differing position carries information; everything after it is
// unconstrained by this pair.
func (g *Graph) addConstraint(word, next string) error {
	a := []rune(word)
	b := []rune(next)

	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			g.addEdge(a[i], b[i])
			return nil
		}
	}

	// No differing position within the shared length. Valid only when the
	// shorter-or-equal word comes first.
	if len(a) > len(b) {
		return errors.Ordering(word, next)
	}
	return nil
}

// addEdge records a precedence constraint. Edges form a set: re-deriving a
// known pair must not increment the in-degree a second time.
func (g *Graph) addEdge(from, to rune) {
	e := edge{from, to}
	if g.edges[e] {
		return
	}
	g.edges[e] = true
	g.succ[from] = append(g.succ[from], to)
	g.inDegree[to]++
}

// Len returns the number of distinct characters in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns the distinct characters in first-seen order.
func (g *Graph) Nodes() []rune {
	out := make([]rune, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// HasEdge reports whether the precedence constraint from -> to was derived.
func (g *Graph) HasEdge(from, to rune) bool {
	return g.edges[edge{from, to}]
}

// EdgeCount returns the number of distinct derived constraints.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// InDegree returns the number of distinct predecessors of c.
func (g *Graph) InDegree(c rune) int {
	return g.inDegree[c]
}

// Edges returns all derived constraints as [from, to] pairs, ordered by the
// source node's registration order and then by edge insertion order.
func (g *Graph) Edges() [][2]rune {
	out := make([][2]rune, 0, len(g.edges))
	for _, from := range g.nodes {
		for _, to := range g.succ[from] {
			out = append(out, [2]rune{from, to})
		}
	}
	return out
}
