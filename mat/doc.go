// Package mat provides a runtime-tagged, row-major numeric matrix and the capability
// interface the conversion engine consumes.
//
// The mat package provides:
//
//   - Matrix, the capability set: dimensionality, depth tag, channel count, an optional
//     contiguous byte view, and always-available random element access.
//   - Dense, an owning, zero-initialised, byte-backed implementation (2-D or N-D).
//   - View, a non-owning rectangular window over a Dense that shares its row step, so
//     windows narrower than the parent are strided and not contiguous.
//   - AsSlice / At / AtInto / Set, typed accessors keyed by the element registry.
//
// Element depth and channel count are only known at runtime; typed accessors verify the
// depth tag before reinterpreting storage and never guess.
//
// See the examples in package convert for usage patterns.
package mat
