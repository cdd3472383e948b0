// Package cache stores rendered images between runs.
//
// Rendering a large DOT document through Graphviz is the slowest step of
// a run. With caching on, the pipeline looks up each image under
// [ArtifactKey] of the DOT text and format, and only renders on a miss.
//
// [FileCache] keeps entries under [DefaultDir]; [NullCache] turns caching
// off without changing the caller.
package cache
