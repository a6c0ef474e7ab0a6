// Copyright 2025 The varray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fixed provides arity-specialized fast paths for fixed small
// counts: for every N in 2..16, kernel variants that take and return
// value arrays [N]T instead of container references. Value arrays live
// on the stack, carry their count in the type, and let the compiler
// unroll the fixed-size loops: no allocation, no runtime bounds
// discovery.
//
// Semantics are identical to the corresponding general kernel at the
// same count; a fast path is a specialization, never a divergence. The
// general kernels in package kernels agree with these bit for bit on
// the same inputs.
//
// The families are generated by genarity; see zz_generated.arity.go.
package fixed

//go:generate go run github.com/varray-dev/varray/cmd/genarity -output zz_generated.arity.go -min 2 -max 16
