package types

// ============================================================================
// SHARED SOLVER TYPES
// ============================================================================

// EdgeFn maps (nonce, side) to a node id on that side of the bipartite
// graph. side is 0 or 1. The one production implementation is the keyed
// SipHash generator in sipnode; tests substitute table-driven graphs.
//
// An EdgeFn must be a pure function: trimming and cycle detection both
// regenerate the same endpoints many times and rely on identical answers.
type EdgeFn func(nonce, side uint32) uint32

// Solution is one proof: the ascending nonce indices of the edges forming
// a closed cycle of the target length.
type Solution []uint32
