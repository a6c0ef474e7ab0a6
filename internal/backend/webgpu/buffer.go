package webgpu

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/varray-dev/varray/internal/array"
)

// elemSize is the byte size of a buffer element. WebGPU storage
// handles float32; wider element types stay on native containers.
const elemSize = 4

// Verify capability conformance.
var (
	_ array.Writable[float32]  = (*Buffer)(nil)
	_ array.Allocator[float32] = (*Allocator)(nil)
)

// Buffer is a float32 container whose elements live in a GPU buffer.
// It satisfies Readable and Writable, so kernels and views treat it
// exactly like a native array. Per-element access crosses the GPU
// boundary and is slow; bulk transfers go through Upload and Download.
//
// Buffers are fixed-length; they are never Resizable.
type Buffer struct {
	backend *Backend
	buffer  *wgpu.Buffer
	n       int
	size    uint64
}

const bufferUsage = wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst

// NewBuffer allocates a zeroed GPU container of n elements.
func (b *Backend) NewBuffer(n int) (*Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("webgpu: negative length %d: %w", n, array.ErrRange)
	}
	size := uint64(n) * elemSize
	buf, reused := b.pool.get(size, bufferUsage)
	if reused && size > 0 {
		// Fresh WebGPU buffers are zero-initialized; pooled ones keep
		// their previous contents and must be cleared here.
		b.writeRange(buf, 0, make([]byte, size))
	}
	return &Buffer{
		backend: b,
		buffer:  buf,
		n:       n,
		size:    size,
	}, nil
}

// FromSlice allocates a GPU container holding a copy of data.
func (b *Backend) FromSlice(data []float32) *Buffer {
	buf := &Buffer{
		backend: b,
		buffer:  b.createBuffer(f32bytes(data), bufferUsage),
		n:       len(data),
		size:    uint64(len(data)) * elemSize,
	}
	return buf
}

// At returns the element at index i, read back through a staging buffer.
func (t *Buffer) At(i int) float32 {
	data, err := t.backend.readRange(t.buffer, uint64(i)*elemSize, elemSize)
	if err != nil {
		panic(fmt.Sprintf("webgpu: read at %d failed: %v", i, err))
	}
	return bytesF32(data)[0]
}

// SetAt writes the element at index i.
func (t *Buffer) SetAt(i int, v float32) {
	t.backend.writeRange(t.buffer, uint64(i)*elemSize, f32bytes([]float32{v}))
}

// Bounds returns the valid index range [0, n).
func (t *Buffer) Bounds() (lo, hi int) { return 0, t.n }

// Upload replaces the container's contents with data, which must have
// exactly n elements.
func (t *Buffer) Upload(data []float32) error {
	if len(data) != t.n {
		return fmt.Errorf("webgpu: upload of %d elements into %d: %w",
			len(data), t.n, array.ErrLengthMismatch)
	}
	if t.n == 0 {
		return nil
	}
	t.backend.writeRange(t.buffer, 0, f32bytes(data))
	return nil
}

// Download reads the whole container back to CPU memory.
func (t *Buffer) Download() ([]float32, error) {
	if t.n == 0 {
		return []float32{}, nil
	}
	data, err := t.backend.readRange(t.buffer, 0, t.size)
	if err != nil {
		return nil, err
	}
	return bytesF32(data), nil
}

// Release returns the GPU buffer to the backend's pool.
func (t *Buffer) Release() {
	t.backend.pool.put(t.buffer, t.size, bufferUsage)
	t.buffer = nil
}

// Allocator is the GPU construction hook: basic-form kernels handed
// this allocator materialize their results in GPU memory.
type Allocator struct {
	backend *Backend
}

// Alloc returns an allocator producing containers on b.
func (b *Backend) Alloc() *Allocator {
	return &Allocator{backend: b}
}

// NewArray returns a zeroed GPU container of n elements.
func (a *Allocator) NewArray(n int) (array.Writable[float32], error) {
	return a.backend.NewBuffer(n)
}

// f32bytes reinterprets a float32 slice as bytes without copying.
func f32bytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*elemSize)
}

// bytesF32 reinterprets a byte slice as float32 values without copying.
func bytesF32(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), len(data)/elemSize)
}
