// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: sipnode.go — Keyed Edge Generator (SipHash-2-4 over BLAKE2b key)
//
// Purpose:
//   - Deterministically maps (nonce, side) → node id, keyed by the header.
//   - The single source of graph structure: trimming and cycle detection
//     both regenerate endpoints through this function on demand instead of
//     materializing the edge list.
//
// Design:
//   - Header → 256-bit key state via BLAKE2b-256, consumed as four
//     little-endian 64-bit words seeding the SipHash state directly.
//   - Node id = siphash24(2*nonce + side) folded and masked to node width.
//   - Pure function of (key, nonce, side): no state, no error paths.
//
// Performance:
//   - Invoked O(HalfSize) times per trim pass; the round function is six
//     adds, four xors and six rotates per round, fully inlineable.
// ─────────────────────────────────────────────────────────────────────────────

package sipnode

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/blake2b"
)

// ═══════════════════════════════════════════════════════════════════════════
// KEY STATE
// ═══════════════════════════════════════════════════════════════════════════

// Keys holds the 256-bit SipHash key state derived from a header string.
// The four words seed v0..v3 directly; there is no constant whitening, the
// full 256 bits of BLAKE2b output carry the entropy.
type Keys struct {
	K0, K1, K2, K3 uint64
}

// NewKeys derives the key state from a header string. Deterministic across
// runs and platforms: BLAKE2b-256 of the raw header bytes, split into four
// little-endian words.
func NewKeys(header string) Keys {
	sum := blake2b.Sum256([]byte(header))
	return Keys{
		K0: binary.LittleEndian.Uint64(sum[0:8]),
		K1: binary.LittleEndian.Uint64(sum[8:16]),
		K2: binary.LittleEndian.Uint64(sum[16:24]),
		K3: binary.LittleEndian.Uint64(sum[24:32]),
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// GENERATOR
// ═══════════════════════════════════════════════════════════════════════════

// Generator maps nonces to node ids for one keyed graph instance.
type Generator struct {
	keys     Keys   // 32B - SipHash seed words, set once
	nodeMask uint32 // 4B  - 2^(sizeShift-1) - 1
}

// New builds a generator for the graph keyed by header with 2^(sizeShift-1)
// nodes per side.
func New(header string, sizeShift uint32) *Generator {
	return &Generator{
		keys:     NewKeys(header),
		nodeMask: uint32(1)<<(sizeShift-1) - 1,
	}
}

// Node returns the node id of nonce's endpoint on the given side (0 or 1).
// Both sides share one integer namespace; the caller keeps them apart by
// which side flag produced the value.
//
//go:nosplit
//go:inline
func (g *Generator) Node(nonce, side uint32) uint32 {
	return uint32(siphash24(&g.keys, 2*uint64(nonce)+uint64(side))) & g.nodeMask
}

// ═══════════════════════════════════════════════════════════════════════════
// SIPHASH-2-4 CORE
// ═══════════════════════════════════════════════════════════════════════════

// sipround is one SipHash mixing round over the four state words.
//
//go:nosplit
//go:inline
func sipround(v0, v1, v2, v3 uint64) (uint64, uint64, uint64, uint64) {
	v0 += v1
	v2 += v3
	v1 = bits.RotateLeft64(v1, 13)
	v3 = bits.RotateLeft64(v3, 16)
	v1 ^= v0
	v3 ^= v2
	v0 = bits.RotateLeft64(v0, 32)
	v2 += v1
	v0 += v3
	v1 = bits.RotateLeft64(v1, 17)
	v3 = bits.RotateLeft64(v3, 21)
	v1 ^= v2
	v3 ^= v0
	v2 = bits.RotateLeft64(v2, 32)
	return v0, v1, v2, v3
}

// siphash24 runs the 2-compression, 4-finalization round schedule over a
// single 64-bit input word and folds the state to one word.
//
//go:nosplit
//go:inline
func siphash24(k *Keys, b uint64) uint64 {
	v0, v1, v2, v3 := k.K0, k.K1, k.K2, k.K3
	v3 ^= b
	v0, v1, v2, v3 = sipround(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipround(v0, v1, v2, v3)
	v0 ^= b
	v2 ^= 0xff
	v0, v1, v2, v3 = sipround(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipround(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipround(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipround(v0, v1, v2, v3)
	return v0 ^ v1 ^ v2 ^ v3
}
