// Package gap provides a generic gap buffer: a slice-backed sequence with a
// relocatable unused region (the gap) kept at the edit point.
//
// The backing array of capacity size is split by two indices preGap <= postGap
// into a live prefix [0, preGap), the gap [preGap, postGap) and a live suffix
// [postGap, size). Insertion and deletion happen at the gap, so typing and
// erasing at a cursor are O(1), and moving the edit point by one element
// copies exactly one element across the gap. When the gap is exhausted the
// buffer doubles its capacity, which keeps insertion amortized O(1).
//
// The editor instantiates Buffer twice: once over bytes for the text of a
// line, and once over line handles for the lines of a file.
//
// Basic usage:
//
//	var b gap.Buffer[byte]
//	b.Insert('a')
//	b.Insert('c')
//	b.MoveLeft()
//	b.Insert('b')      // "abc", edit point after 'b'
//	b.Delete()         // removes 'b'
//
// A Buffer whose indices ever cross is corrupt. Every mutating method checks
// the invariant and panics with an *InvariantError describing the buffer
// state, as does indexed access outside [0, Len()).
//
// Buffer is not safe for concurrent use.
package gap
