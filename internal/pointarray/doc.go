// Package pointarray stores ordered sequences of 2D vertices for the map
// renderer.
//
// A PointArray is one of a closed set of representations:
//
//   - Flat: interleaved x,y float32 pairs over a [lower, upper) range of a
//     buffer. Windows taken with Subarray share the buffer.
//   - Growable: a private buffer with slack on both sides of its active
//     range, mutated in place by InsertAt, Add and Reverse.
//   - Compressed: signed byte deltas against a reference point, quantised
//     per axis. Windows share the delta buffer.
//   - Adapter: a read-only view over a go-geom coordinate holder.
//
// Immutable representations never change under a caller. Mutating
// operations return the handle to use afterwards, which is a new Growable
// for everything except a Growable itself. Taking a window over a Growable
// (or finalizing it without compression) shares its buffer, so any later
// mutation of the Growable invalidates those windows.
//
// Containers are read with an Iterator, or flattened into a reusable
// ArrayData with ToArray, optionally dropping points closer together than
// the current rendering resolution.
//
// Nothing here is safe for concurrent mutation. Immutable containers may be
// iterated from several goroutines at once since all cursor state lives in
// the Iterator.
package pointarray
