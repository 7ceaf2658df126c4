package alphabet

import (
	"strings"
	"testing"
)

// assertConsistent checks that order is a permutation of the graph's nodes
// and that every derived edge places its source before its target.
func assertConsistent(t *testing.T, g *Graph, order string) {
	t.Helper()

	runes := []rune(order)
	if len(runes) != g.Len() {
		t.Fatalf("ordering %q has %d characters, want %d", order, len(runes), g.Len())
	}
	for _, c := range g.Nodes() {
		if !strings.ContainsRune(order, c) {
			t.Fatalf("ordering %q is missing character %q", order, c)
		}
	}
	for _, e := range g.Edges() {
		if strings.IndexRune(order, e[0]) >= strings.IndexRune(order, e[1]) {
			t.Errorf("ordering %q violates constraint %q -> %q", order, e[0], e[1])
		}
	}
}

func TestSort_Empty(t *testing.T) {
	g, _ := Build(nil)
	order, ok := Sort(g)
	if !ok {
		t.Fatal("Sort() ok = false, want true for an empty graph")
	}
	if order != "" {
		t.Errorf("Sort() = %q, want empty", order)
	}
}

func TestSort_LinearChain(t *testing.T) {
	g, err := Build([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Build() error = %v, want nil", err)
	}
	order, ok := Sort(g)
	if !ok {
		t.Fatal("Sort() ok = false, want true")
	}
	if order != "abc" {
		t.Errorf("Sort() = %q, want %q", order, "abc")
	}
}

func TestSort_IsolatedNodes(t *testing.T) {
	// A single word yields no edges; every character is isolated but must
	// still appear, in first-seen order.
	g, err := Build([]string{"zyx"})
	if err != nil {
		t.Fatalf("Build() error = %v, want nil", err)
	}
	order, ok := Sort(g)
	if !ok {
		t.Fatal("Sort() ok = false, want true")
	}
	if order != "zyx" {
		t.Errorf("Sort() = %q, want %q (first-seen order)", order, "zyx")
	}
}

func TestSort_Cycle(t *testing.T) {
	g, err := Build([]string{"ab", "ba", "ab"})
	if err != nil {
		t.Fatalf("Build() error = %v, want nil", err)
	}
	order, ok := Sort(g)
	if ok {
		t.Fatalf("Sort() ok = true with order %q, want false for a cycle", order)
	}
	if order != "" {
		t.Errorf("Sort() = %q, want empty on cycle", order)
	}
}

func TestSort_PartialCycle(t *testing.T) {
	// d is unconstrained but a, b form a cycle; no partial order may leak.
	g, _ := Build(nil)
	g.addNode('d')
	g.addNode('a')
	g.addNode('b')
	g.addEdge('a', 'b')
	g.addEdge('b', 'a')

	order, ok := Sort(g)
	if ok || order != "" {
		t.Errorf("Sort() = %q, %v, want empty and false", order, ok)
	}
}

func TestDeduce_EndToEnd(t *testing.T) {
	words := []string{"wrt", "wrf", "er", "ett", "rftt"}
	order, err := Deduce(words)
	if err != nil {
		t.Fatalf("Deduce() error = %v, want nil", err)
	}
	if order == "" {
		t.Fatal("Deduce() = empty, want a full ordering")
	}

	g, err := Build(words)
	if err != nil {
		t.Fatalf("Build() error = %v, want nil", err)
	}
	assertConsistent(t, g, order)
}

func TestDeduce_Cycle(t *testing.T) {
	// The three pairs derive a -> b and b -> a.
	order, err := Deduce([]string{"ab", "ba", "ab"})
	if err != nil {
		t.Fatalf("Deduce() error = %v, want nil (a cycle is not an error)", err)
	}
	if order != "" {
		t.Errorf("Deduce() = %q, want empty on cycle", order)
	}
}

func TestDeduce_TwoWordsNoCycle(t *testing.T) {
	// A single adjacent pair yields a single edge: ["ab", "ba"] only
	// derives a -> b, so a consistent ordering exists.
	order, err := Deduce([]string{"ab", "ba"})
	if err != nil {
		t.Fatalf("Deduce() error = %v, want nil", err)
	}
	if order != "ab" {
		t.Errorf("Deduce() = %q, want %q", order, "ab")
	}
}

func TestDeduce_Contradiction(t *testing.T) {
	_, err := Deduce([]string{"abc", "ab"})
	if err == nil {
		t.Fatal("Deduce() error = nil, want contradiction error")
	}
}

func TestDeduce_PrefixOrderValid(t *testing.T) {
	order, err := Deduce([]string{"ab", "abc"})
	if err != nil {
		t.Fatalf("Deduce() error = %v, want nil", err)
	}
	if len([]rune(order)) != 3 {
		t.Errorf("Deduce() = %q, want 3 characters", order)
	}
}

func TestDeduce_Empty(t *testing.T) {
	order, err := Deduce(nil)
	if err != nil {
		t.Fatalf("Deduce() error = %v, want nil", err)
	}
	if order != "" {
		t.Errorf("Deduce() = %q, want empty", order)
	}
}

func TestDeduce_SingleRepeatedCharacter(t *testing.T) {
	order, err := Deduce([]string{"aa", "aa"})
	if err != nil {
		t.Fatalf("Deduce() error = %v, want nil", err)
	}
	if order != "a" {
		t.Errorf("Deduce() = %q, want %q", order, "a")
	}
}

func TestDeduce_Deterministic(t *testing.T) {
	words := []string{"baa", "abcd", "abca", "cab", "cad"}
	first, err := Deduce(words)
	if err != nil {
		t.Fatalf("Deduce() error = %v, want nil", err)
	}
	for i := 0; i < 20; i++ {
		got, err := Deduce(words)
		if err != nil {
			t.Fatalf("Deduce() error = %v, want nil", err)
		}
		if got != first {
			t.Fatalf("Deduce() = %q on run %d, want %q every run", got, i, first)
		}
	}
}

func TestDeduce_ConsistencyAcrossInputs(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"two words", []string{"z", "x"}},
		{"chain", []string{"baa", "abcd", "abca", "cab", "cad"}},
		{"shared prefixes", []string{"aac", "aab", "bba", "bbc"}},
		{"ties among roots", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := Deduce(tt.words)
			if err != nil {
				t.Fatalf("Deduce() error = %v, want nil", err)
			}
			if order == "" {
				t.Fatal("Deduce() = empty, want a full ordering")
			}
			g, err := Build(tt.words)
			if err != nil {
				t.Fatalf("Build() error = %v, want nil", err)
			}
			assertConsistent(t, g, order)
		})
	}
}
