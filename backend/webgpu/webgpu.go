// Copyright 2025 The varray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides a foreign-memory container backend: arrays
// whose elements live in GPU buffers, satisfying the same capability
// contracts as native containers so kernels and views operate on them
// unchanged.
//
// WebGPU is a cross-platform graphics and compute API that works on:
//   - Windows (via Dawn/D3D12)
//   - macOS (via Dawn/Metal)
//   - Linux (via Dawn/Vulkan)
//
// Example:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gpu.Release()
//
//	buf := gpu.FromSlice([]float32{1, 2, 3})
//	out, err := kernels.Add[float32](gpu.Alloc(), buf, buf) // result stays on GPU
package webgpu

import (
	"github.com/varray-dev/varray/array"
	internalwebgpu "github.com/varray-dev/varray/internal/backend/webgpu"
)

// Backend owns the WebGPU device state shared by the buffers it allocates.
type Backend = internalwebgpu.Backend

// Buffer is a float32 container whose elements live in GPU memory.
type Buffer = internalwebgpu.Buffer

// Allocator is the GPU construction hook for basic-form kernels.
type Allocator = internalwebgpu.Allocator

// Compile-time check that GPU containers satisfy the contracts.
var (
	_ array.Writable[float32]  = (*Buffer)(nil)
	_ array.Allocator[float32] = (*Allocator)(nil)
)

// New creates a new WebGPU backend. Call Release when done to free GPU
// resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
// Useful for graceful fallback to the native backend:
//
//	var alloc array.Allocator[float32] = native.Alloc[float32]()
//	if webgpu.IsAvailable() {
//	    gpu, _ := webgpu.New()
//	    alloc = gpu.Alloc()
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
