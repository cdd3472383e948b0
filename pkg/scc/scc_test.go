package scc

import (
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

func build(n int, edges [][2]int) *Graph {
	g := New(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func TestKosaraju_Textbook(t *testing.T) {
	g := build(10, [][2]int{
		{0, 1}, {1, 2}, {2, 0}, {2, 8}, {8, 9},
		{1, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 3}, {5, 7},
	})
	got := Kosaraju(g)
	want := [][]int{{3, 4, 5, 6}, {0, 1, 2}, {7}, {8}, {9}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Kosaraju() = %v, want %v", got, want)
	}
}

func TestKosaraju_Acyclic(t *testing.T) {
	g := build(3, [][2]int{{0, 1}, {1, 2}})
	got := Kosaraju(g)
	want := [][]int{{0}, {1}, {2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Kosaraju() = %v, want %v", got, want)
	}
}

func TestKosaraju_SelfLoop(t *testing.T) {
	g := build(2, [][2]int{{0, 0}, {0, 1}})
	got := Kosaraju(g)
	want := [][]int{{0}, {1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Kosaraju() = %v, want %v", got, want)
	}
}

func TestKosaraju_Empty(t *testing.T) {
	if got := Kosaraju(New(0)); len(got) != 0 {
		t.Errorf("Kosaraju(empty) = %v", got)
	}
}

func TestKosaraju_SingleVertex(t *testing.T) {
	got := Kosaraju(New(1))
	if !reflect.DeepEqual(got, [][]int{{0}}) {
		t.Errorf("Kosaraju(single) = %v", got)
	}
}

func TestKosaraju_DeepChain(t *testing.T) {
	// A long cycle that would overflow a naive recursive walk's budget.
	const n = 200000
	g := New(n)
	for i := range n {
		g.AddEdge(i, (i+1)%n)
	}
	got := Kosaraju(g)
	if len(got) != 1 || len(got[0]) != n {
		t.Fatalf("got %d components, want one of size %d", len(got), n)
	}
}

func TestTranspose(t *testing.T) {
	g := build(3, [][2]int{{0, 1}, {0, 2}, {2, 1}})
	tr := g.Transpose()
	want := [][]int{nil, {0, 2}, {0}}
	if !reflect.DeepEqual(tr.Adj, want) {
		t.Errorf("Transpose().Adj = %v, want %v", tr.Adj, want)
	}
}

// tarjan computes components with gonum for comparison.
func tarjan(n int, edges [][2]int) [][]int {
	dg := simple.NewDirectedGraph()
	for i := range n {
		dg.AddNode(simple.Node(i))
	}
	for _, e := range edges {
		dg.SetEdge(dg.NewEdge(simple.Node(e[0]), simple.Node(e[1])))
	}
	var out [][]int
	for _, comp := range topo.TarjanSCC(dg) {
		ids := make([]int, len(comp))
		for i, node := range comp {
			ids[i] = int(node.ID())
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	return out
}

func normalize(comps [][]int) [][]int {
	out := slices.Clone(comps)
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })
	return out
}

func TestKosaraju_MatchesTarjan(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := range 50 {
		n := 1 + rng.IntN(40)
		var edges [][2]int
		seen := map[[2]int]bool{}
		for range rng.IntN(n * 3) {
			u, v := rng.IntN(n), rng.IntN(n)
			if u == v || seen[[2]int{u, v}] {
				continue
			}
			seen[[2]int{u, v}] = true
			edges = append(edges, [2]int{u, v})
		}

		got := normalize(Kosaraju(build(n, edges)))
		want := normalize(tarjan(n, edges))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round %d (n=%d, edges=%v):\nKosaraju = %v\nTarjan   = %v", round, n, edges, got, want)
		}
	}
}
