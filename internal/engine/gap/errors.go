package gap

import "fmt"

// InvariantError reports a gap buffer whose internal state is inconsistent,
// or an index request outside the logical contents. It is raised by panic:
// such a state is a defect in the caller or the buffer, never bad input.
type InvariantError struct {
	Op       string // Operation that detected the problem
	Index    int    // Requested index, or -1 when not index related
	Capacity int    // Size of the backing array
	Length   int    // Logical length
	PreGap   int
	PostGap  int
}

func (e *InvariantError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("gap: %s: index %d out of range [0,%d) (capacity %d, gap [%d,%d))",
			e.Op, e.Index, e.Length, e.Capacity, e.PreGap, e.PostGap)
	}
	return fmt.Sprintf("gap: %s: invariant 0 <= preGap <= postGap <= size violated (capacity %d, length %d, gap [%d,%d))",
		e.Op, e.Capacity, e.Length, e.PreGap, e.PostGap)
}
