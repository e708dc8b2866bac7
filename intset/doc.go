// Package intset provides a compressed set of uint32 keys backed by a
// Roaring bitmap.
//
// It trades the generality of denseset.Set for memory efficiency on large
// integer domains: membership, rank and set algebra stay fast even with
// millions of keys, and the serialized form is portable across the Roaring
// ecosystem.
package intset
