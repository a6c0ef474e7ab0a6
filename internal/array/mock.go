package array

// Verify capability conformance.
var (
	_ Readable[float32] = (*MockSeq[float32])(nil)
	_ Readable[float32] = ReadOnly[float32]{}
)

// MockSeq is a simple sequence container for testing: valid over an
// arbitrary half-open range [lo, hi), backed by a Go slice.
type MockSeq[T Elem] struct {
	lo   int
	data []T
}

// NewMockSeq creates a MockSeq valid over [lo, lo+len(data)).
func NewMockSeq[T Elem](lo int, data []T) *MockSeq[T] {
	return &MockSeq[T]{lo: lo, data: data}
}

// At returns the element at index i.
func (m *MockSeq[T]) At(i int) T { return m.data[i-m.lo] }

// SetAt sets the element at index i.
func (m *MockSeq[T]) SetAt(i int, v T) { m.data[i-m.lo] = v }

// Bounds returns the valid index range [lo, hi).
func (m *MockSeq[T]) Bounds() (lo, hi int) { return m.lo, m.lo + len(m.data) }

// ReadOnly strips every capability but Readable from a container.
// Used to exercise Contract-Violation paths.
type ReadOnly[T Elem] struct {
	R Readable[T]
}

// At returns the element at index i.
func (r ReadOnly[T]) At(i int) T { return r.R.At(i) }

// Bounds returns the valid index range of the wrapped container.
func (r ReadOnly[T]) Bounds() (lo, hi int) { return r.R.Bounds() }
