package gap

// Buffer is a gap buffer over elements of type T.
// The zero value is an empty buffer ready to use.
type Buffer[T any] struct {
	data    []T
	preGap  int
	postGap int
}

// New creates an empty buffer with the given initial capacity.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{
		data:    make([]T, capacity),
		postGap: capacity,
	}
}

// FromSlice creates a buffer holding a copy of items, with the edit point
// at the start and room for slack further insertions.
func FromSlice[T any](items []T, slack int) *Buffer[T] {
	if slack < 0 {
		slack = 0
	}
	b := &Buffer[T]{
		data:    make([]T, len(items)+slack),
		postGap: slack,
	}
	copy(b.data[slack:], items)
	return b
}

// Len returns the logical number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.data) - (b.postGap - b.preGap)
}

// Cap returns the size of the backing array.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Cursor returns the edit point: the logical index at which Insert writes.
func (b *Buffer[T]) Cursor() int {
	return b.preGap
}

// Gap returns the physical gap bounds, for diagnostics.
func (b *Buffer[T]) Gap() (preGap, postGap int) {
	return b.preGap, b.postGap
}

// MoveLeft shifts the edit point one element towards the start.
// It is a no-op at the start of the buffer.
func (b *Buffer[T]) MoveLeft() {
	if b.preGap == 0 {
		return
	}
	b.preGap--
	b.postGap--
	if b.preGap != b.postGap {
		var zero T
		b.data[b.postGap] = b.data[b.preGap]
		b.data[b.preGap] = zero
	}
	b.check("MoveLeft")
}

// MoveRight shifts the edit point one element towards the end.
// It is a no-op at the end of the buffer.
func (b *Buffer[T]) MoveRight() {
	if b.postGap == len(b.data) {
		return
	}
	if b.preGap != b.postGap {
		var zero T
		b.data[b.preGap] = b.data[b.postGap]
		b.data[b.postGap] = zero
	}
	b.preGap++
	b.postGap++
	b.check("MoveRight")
}

// Seek moves the edit point to logical index pos, clamped to [0, Len()].
// Elements between the old and new edit point are block-copied across the gap.
func (b *Buffer[T]) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if n := b.Len(); pos > n {
		pos = n
	}
	switch {
	case pos < b.preGap:
		n := b.preGap - pos
		copy(b.data[b.postGap-n:b.postGap], b.data[pos:b.preGap])
		clear(b.data[pos : b.postGap-n])
		b.preGap -= n
		b.postGap -= n
	case pos > b.preGap:
		n := pos - b.preGap
		copy(b.data[b.preGap:b.preGap+n], b.data[b.postGap:b.postGap+n])
		clear(b.data[b.preGap+n : b.postGap+n])
		b.preGap += n
		b.postGap += n
	default:
		return
	}
	b.check("Seek")
}

// Insert writes v at the edit point and advances the edit point past it.
func (b *Buffer[T]) Insert(v T) {
	if b.preGap == b.postGap {
		b.grow()
	}
	b.data[b.preGap] = v
	b.preGap++
	b.check("Insert")
}

// Delete removes the element immediately before the edit point and returns it.
// The second result is false, and the zero value is returned, when the edit
// point is at the start.
func (b *Buffer[T]) Delete() (T, bool) {
	var zero T
	if b.preGap == 0 {
		return zero, false
	}
	b.preGap--
	v := b.data[b.preGap]
	b.data[b.preGap] = zero
	b.check("Delete")
	return v, true
}

// At returns the element at logical index i.
// It panics with an *InvariantError when i is outside [0, Len()).
func (b *Buffer[T]) At(i int) T {
	return b.data[b.physical("At", i)]
}

// Set replaces the element at logical index i.
// It panics with an *InvariantError when i is outside [0, Len()).
func (b *Buffer[T]) Set(i int, v T) {
	b.data[b.physical("Set", i)] = v
}

// Slice returns a copy of the logical contents.
func (b *Buffer[T]) Slice() []T {
	return b.AppendTo(make([]T, 0, b.Len()))
}

// AppendTo appends the logical contents to dst and returns the result.
func (b *Buffer[T]) AppendTo(dst []T) []T {
	dst = append(dst, b.data[:b.preGap]...)
	return append(dst, b.data[b.postGap:]...)
}

// Clone returns an independent copy with the same capacity and edit point.
// Elements are copied shallowly.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := &Buffer[T]{
		data:    make([]T, len(b.data)),
		preGap:  b.preGap,
		postGap: b.postGap,
	}
	copy(c.data, b.data)
	return c
}

// physical maps a logical index to a slot in data.
func (b *Buffer[T]) physical(op string, i int) int {
	if i < 0 || i >= b.Len() {
		panic(b.invariantError(op, i))
	}
	if i < b.preGap {
		return i
	}
	return i + (b.postGap - b.preGap)
}

// grow doubles the capacity (minimum 1) and re-centers the gap between the
// live prefix and the live suffix, which keeps its length.
func (b *Buffer[T]) grow() {
	size := len(b.data)
	newSize := 2 * size
	if newSize == 0 {
		newSize = 1
	}
	data := make([]T, newSize)
	copy(data, b.data[:b.preGap])
	suffix := size - b.postGap
	copy(data[newSize-suffix:], b.data[b.postGap:])
	b.data = data
	b.postGap = newSize - suffix
	b.check("grow")
}

func (b *Buffer[T]) check(op string) {
	if b.preGap < 0 || b.preGap > b.postGap || b.postGap > len(b.data) {
		panic(b.invariantError(op, -1))
	}
}

func (b *Buffer[T]) invariantError(op string, index int) *InvariantError {
	return &InvariantError{
		Op:       op,
		Index:    index,
		Capacity: len(b.data),
		Length:   b.Len(),
		PreGap:   b.preGap,
		PostGap:  b.postGap,
	}
}
