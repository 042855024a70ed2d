// Package sources contains the source adapters the aggregator fans out
// to. Each adapter implements interfaces.SourceAdapter for exactly one
// origin and knows nothing about the others. Adapters are registered in
// a fixed list at construction time; behavior is selected through the
// interface, not reflection.
//
// Adapters never propagate recoverable failures: a non-200 response, an
// unparseable page or an empty teaser list all yield an empty result
// slice. Only unexpected faults are returned, and even those are
// contained by the aggregator.
package sources
