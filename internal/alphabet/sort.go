package alphabet

import (
	"strings"
)

// Sort runs Kahn's algorithm over the graph and returns a character ordering
// satisfying every derived constraint, with ok reporting success. When the
// graph contains a cycle no total order exists and Sort returns ("", false);
// that is an expected outcome, not an error.
//
// The work queue is seeded with all zero-in-degree characters in first-seen
// order and successors are visited in edge insertion order, so the result is
// stable across runs. Sort decrements the graph's in-degree table in place:
// build a fresh graph for each sort.
func Sort(g *Graph) (order string, ok bool) {
	queue := make([]rune, 0, len(g.nodes))
	for _, c := range g.nodes {
		if g.inDegree[c] == 0 {
			queue = append(queue, c)
		}
	}

	var b strings.Builder
	placed := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		b.WriteRune(c)
		placed++

		for _, s := range g.succ[c] {
			g.inDegree[s]--
			if g.inDegree[s] == 0 {
				queue = append(queue, s)
			}
		}
	}

	// Characters left with a nonzero in-degree form a cycle.
	if placed != len(g.nodes) {
		return "", false
	}
	return b.String(), true
}

// Deduce returns a character ordering consistent with the given sorted word
// list. The empty string with a nil error means the derived constraints
// contain a cycle and no total order exists. A non-nil error means the word
// list itself is contradictory (a word appears before its own proper
// prefix) and carries both offending words.
func Deduce(words []string) (string, error) {
	g, err := Build(words)
	if err != nil {
		return "", err
	}
	order, ok := Sort(g)
	if !ok {
		return "", nil
	}
	return order, nil
}
