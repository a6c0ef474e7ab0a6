package webgpu

import (
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

const (
	smallThreshold  = 4 * 1024    // 4KB
	mediumThreshold = 1024 * 1024 // 1MB
	maxPoolSize     = 100         // Max buffers per category
)

// pooledBuffer wraps a GPU buffer with its allocation metadata.
type pooledBuffer struct {
	buffer *wgpu.Buffer
	size   uint64
	usage  wgpu.BufferUsage
}

// bufferPool reuses GPU buffers to reduce allocation overhead.
// Buffers are categorized by size.
type bufferPool struct {
	device *wgpu.Device

	small  []*pooledBuffer
	medium []*pooledBuffer
	large  []*pooledBuffer

	mu sync.Mutex

	poolHits   uint64
	poolMisses uint64
}

func newBufferPool(device *wgpu.Device) *bufferPool {
	return &bufferPool{
		device: device,
		small:  make([]*pooledBuffer, 0, maxPoolSize),
		medium: make([]*pooledBuffer, 0, maxPoolSize),
		large:  make([]*pooledBuffer, 0, maxPoolSize),
	}
}

func (p *bufferPool) category(size uint64) *[]*pooledBuffer {
	switch {
	case size < smallThreshold:
		return &p.small
	case size < mediumThreshold:
		return &p.medium
	default:
		return &p.large
	}
}

// get returns a pooled buffer of at least size bytes with the given
// usage, or allocates a fresh one. reused reports whether the buffer
// came from the pool; reused buffers still hold their previous
// contents and the caller must clear them before handing them out.
func (p *bufferPool) get(size uint64, usage wgpu.BufferUsage) (buf *wgpu.Buffer, reused bool) {
	p.mu.Lock()
	pool := p.category(size)
	for i, pb := range *pool {
		if pb.size >= size && pb.usage == usage {
			*pool = append((*pool)[:i], (*pool)[i+1:]...)
			p.poolHits++
			p.mu.Unlock()
			return pb.buffer, true
		}
	}
	p.poolMisses++
	p.mu.Unlock()

	return p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: usage,
		Size:  size,
	}), false
}

// put returns a buffer to the pool, releasing it if the category is full.
func (p *bufferPool) put(buffer *wgpu.Buffer, size uint64, usage wgpu.BufferUsage) {
	p.mu.Lock()
	pool := p.category(size)
	if len(*pool) < maxPoolSize {
		*pool = append(*pool, &pooledBuffer{buffer: buffer, size: size, usage: usage})
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	buffer.Release()
}

// release frees every pooled buffer.
func (p *bufferPool) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, pool := range [][]*pooledBuffer{p.small, p.medium, p.large} {
		for _, pb := range pool {
			pb.buffer.Release()
		}
	}
	p.small, p.medium, p.large = nil, nil, nil
}
