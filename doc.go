// Package denseset provides a flat sorted-set container for Go.
//
// A Set stores its elements contiguously in a single sorted, duplicate-free
// buffer instead of a node-based tree. Lookups are cache-friendly binary
// searches; inserts and deletes shift elements within the buffer. This trades
// O(n) worst-case mutation for compact memory and O(log n) lookups that touch
// very few cache lines, which wins for read-heavy and small-to-medium sets.
//
// # Quick Start
//
//	s := denseset.New[int]()
//	s.Insert(7)
//	s.Insert(1)
//	s.Insert(5)
//	fmt.Println(s.Slice()) // [1 5 7]
//
// Custom orderings use a three-way comparator:
//
//	s := denseset.NewFunc(func(a, b string) int {
//	    return cmp.Compare(len(a), len(b))
//	})
//
// # Positions
//
// Lookup and mutation methods work with integer positions into the sorted
// sequence; Len() is the end sentinel, mirroring the half-open convention of
// the sort and slices packages. Any mutation invalidates previously obtained
// positions at or after the mutation point.
//
// # Concurrency
//
// A Set performs no internal locking. Concurrent readers are safe; any writer
// requires external synchronization.
//
// # Persistence
//
// Sets can be written to self-describing binary snapshots and placed in local
// or cloud blob storage:
//
//	persistence.Save(w, s)
//	s, _ := persistence.Load[int](r)
//
// See the persistence and blobstore packages.
package denseset
