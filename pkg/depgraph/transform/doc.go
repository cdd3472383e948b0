// Package transform prunes a module graph and detects its import cycles.
//
// # Overview
//
// A freshly built [depgraph.DepGraph] usually holds far more than anyone
// wants to look at: heavily used utility modules, modules many hops away
// from the entry point, and third-party code. This package narrows it down
// in a fixed sequence of stages:
//
//  1. [ExcludeNoise] drops pure sources and sinks with too many relations.
//  2. [ExcludeBacon] drops modules too many imports away from the root.
//  3. [OnlyFilter] drops modules outside the requested name prefixes.
//  4. [RemoveExcluded] deletes everything excluded and scrubs it from the
//     survivors' adjacency sets.
//
// Each exclusion stage appends the names it excludes to the graph's skip
// list, so later stages and [depgraph.DepGraph.Iterate] treat them as
// invisible. Removal must run last: a node excluded by the bacon stage must
// be scrubbed just like one excluded by noise. [Prune] runs the stages in
// order.
//
// # Cycles
//
// [FindCycles] runs Kosaraju's algorithm (package scc) over the surviving
// graph and records every strongly connected component with two or more
// members. A module that imports itself is a component of one and is not
// reported as a cycle.
package transform
