// Package cost defines the numeric capability that path costs must satisfy.
//
// A Model[C] supplies everything the search engine needs from a cost type:
//
//   - Compare: an ordering sufficient to pick a minimum.
//   - Zero:    the additive identity, used to seed the start cell.
//   - Add:     accumulation of edge costs along a path.
//   - Normalize: maps a raw value to a usable cost, or reports "no such path".
//
// Provided models:
//
//   - Unsigned[C]: identity normalization; every value is valid.
//   - Signed[C]:   negative values are unreachable.
//   - Float[C]:    NaN and ±Inf are unreachable, -0 becomes +0, negatives are unreachable.
//
// For[C] returns the matching model for any built-in numeric type, so most callers
// never name a model explicitly.
//
// Contract:
//
//	Compare is only defined on normalized values. Comparing a value that failed
//	normalization (e.g. NaN) is a programmer error and panics with ErrUnordered
//	rather than returning a wrong answer.
package cost
