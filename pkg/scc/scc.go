// Package scc computes strongly connected components of small directed
// graphs indexed by integer vertex.
//
// The graph is a throwaway view: callers build it from their own model,
// run [Kosaraju], and map the returned indexes back to their names.
package scc

import (
	"cmp"
	"slices"
)

// Graph is a directed graph over vertices 0..N-1 stored as adjacency
// lists.
type Graph struct {
	Adj [][]int
}

// New returns a graph with n vertices and no edges.
func New(n int) *Graph {
	return &Graph{Adj: make([][]int, n)}
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.Adj) }

// AddEdge adds the edge u -> v. It panics if either vertex is out of range.
func (g *Graph) AddEdge(u, v int) {
	if v < 0 || v >= len(g.Adj) {
		panic("scc: vertex out of range")
	}
	g.Adj[u] = append(g.Adj[u], v)
}

// Transpose returns a new graph with every edge reversed.
func (g *Graph) Transpose() *Graph {
	t := New(g.Len())
	for u, vs := range g.Adj {
		for _, v := range vs {
			t.Adj[v] = append(t.Adj[v], u)
		}
	}
	return t
}

// Kosaraju returns the strongly connected components of g.
//
// Components are ordered by descending size, ties broken by their smallest
// vertex; the vertices of each component are sorted ascending. Both passes
// use explicit stacks.
func Kosaraju(g *Graph) [][]int {
	order := finishOrder(g)
	t := g.Transpose()

	seen := make([]bool, g.Len())
	var comps [][]int
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if seen[v] {
			continue
		}
		comp := collect(t, v, seen)
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	slices.SortStableFunc(comps, func(a, b []int) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a[0], b[0])
	})
	return comps
}

// finishOrder returns the vertices of g in depth-first post-order.
func finishOrder(g *Graph) []int {
	type frame struct {
		v    int
		next int
	}
	seen := make([]bool, g.Len())
	order := make([]int, 0, g.Len())
	for s := range g.Adj {
		if seen[s] {
			continue
		}
		seen[s] = true
		stack := []frame{{v: s}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(g.Adj[top.v]) {
				w := g.Adj[top.v][top.next]
				top.next++
				if !seen[w] {
					seen[w] = true
					stack = append(stack, frame{v: w})
				}
				continue
			}
			order = append(order, top.v)
			stack = stack[:len(stack)-1]
		}
	}
	return order
}

// collect marks and returns every unseen vertex reachable from s.
func collect(g *Graph, s int, seen []bool) []int {
	seen[s] = true
	comp := []int{s}
	stack := []int{s}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range g.Adj[v] {
			if !seen[w] {
				seen[w] = true
				comp = append(comp, w)
				stack = append(stack, w)
			}
		}
	}
	return comp
}
