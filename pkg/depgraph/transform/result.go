package transform

// TransformResult counts what the pruning and cycle stages did. It is
// returned by [Prune] and filled in by the pipeline for logging.
type TransformResult struct {
	// NoiseExcluded is the number of pure sources and sinks dropped for
	// exceeding the noise level.
	NoiseExcluded int

	// BaconExcluded is the number of nodes beyond the hop limit.
	BaconExcluded int

	// OnlyExcluded is the number of nodes outside the allowed prefixes.
	OnlyExcluded int

	// NodesRemoved is the number of nodes deleted by [RemoveExcluded],
	// including nodes excluded by pattern when the graph was built.
	NodesRemoved int

	// Cycles is the number of import cycles found by [FindCycles].
	Cycles int
}

// Excluded returns the number of nodes excluded by the pruning stages.
func (r TransformResult) Excluded() int {
	return r.NoiseExcluded + r.BaconExcluded + r.OnlyExcluded
}
