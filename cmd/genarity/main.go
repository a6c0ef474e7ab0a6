// Copyright 2025 The varray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Command genarity generates the arity-specialized kernel families in
// package fixed: for every count N in a fixed range it emits load,
// store, fill, element-wise, and reduction variants over value arrays
// [N]T. Go generics cannot abstract over an array length, so the
// family is generated rather than hand-duplicated fifteen times.
//
// Usage, via go:generate in the fixed package:
//
//	genarity -output zz_generated.arity.go -min 2 -max 16
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

var (
	output = flag.String("output", "zz_generated.arity.go", "Output file")
	minN   = flag.Int("min", 2, "Smallest generated arity")
	maxN   = flag.Int("max", 16, "Largest generated arity")
)

const header = `// Code generated by genarity; DO NOT EDIT.

package fixed

import (
	"fmt"

	"github.com/varray-dev/varray/array"
)
`

const family = `
// Load{{.N}} reads exactly {{.N}} elements from s into a value array.
func Load{{.N}}[T array.Elem](s array.Slice[T]) (out [{{.N}}]T, err error) {
	start, count, err := s.Resolve()
	if err != nil {
		return out, fmt.Errorf("fixed: load: %w", err)
	}
	if count != {{.N}} {
		return out, fmt.Errorf("fixed: load: slice count %d, want {{.N}}: %w", count, array.ErrLengthMismatch)
	}
	for i := range out {
		out[i] = s.Source.At(start + i)
	}
	return out, nil
}

// Store{{.N}} writes the {{.N}} elements of v into dst.
func Store{{.N}}[T array.Elem](dst array.Slice[T], v [{{.N}}]T) error {
	w, start, count, err := dst.ResolveWritable(1)
	if err != nil {
		return fmt.Errorf("fixed: store: %w", err)
	}
	if count != {{.N}} {
		return fmt.Errorf("fixed: store: slice count %d, want {{.N}}: %w", count, array.ErrLengthMismatch)
	}
	for i, x := range v {
		w.SetAt(start+i, x)
	}
	return nil
}

// Fill{{.N}} returns a value array with every element set to value.
func Fill{{.N}}[T array.Elem](value T) (out [{{.N}}]T) {
	for i := range out {
		out[i] = value
	}
	return out
}

// Add{{.N}} returns the element-wise sum a + b.
func Add{{.N}}[T array.Number](a, b [{{.N}}]T) (out [{{.N}}]T) {
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

// Sub{{.N}} returns the element-wise difference a - b.
func Sub{{.N}}[T array.Number](a, b [{{.N}}]T) (out [{{.N}}]T) {
	for i := range out {
		out[i] = a[i] - b[i]
	}
	return out
}

// Mul{{.N}} returns the element-wise product a * b.
func Mul{{.N}}[T array.Number](a, b [{{.N}}]T) (out [{{.N}}]T) {
	for i := range out {
		out[i] = a[i] * b[i]
	}
	return out
}

// Div{{.N}} returns the element-wise quotient a / b.
func Div{{.N}}[T array.Number](a, b [{{.N}}]T) (out [{{.N}}]T) {
	for i := range out {
		out[i] = a[i] / b[i]
	}
	return out
}

// Scale{{.N}} returns a with every element multiplied by c.
func Scale{{.N}}[T array.Number](a [{{.N}}]T, c T) (out [{{.N}}]T) {
	for i := range out {
		out[i] = a[i] * c
	}
	return out
}

// Neg{{.N}} returns the element-wise negation of a.
func Neg{{.N}}[T array.Number](a [{{.N}}]T) (out [{{.N}}]T) {
	for i := range out {
		out[i] = -a[i]
	}
	return out
}

// Sum{{.N}} folds the elements of a left to right.
func Sum{{.N}}[T array.Number](a [{{.N}}]T) T {
	var acc T
	for _, x := range a {
		acc += x
	}
	return acc
}

// Dot{{.N}} returns the inner product of a and b, accumulated left to right.
func Dot{{.N}}[T array.Number](a, b [{{.N}}]T) T {
	var acc T
	for i := range a {
		acc += a[i] * b[i]
	}
	return acc
}

// Min{{.N}} returns the smallest element of a.
func Min{{.N}}[T array.Number](a [{{.N}}]T) T {
	acc := a[0]
	for _, x := range a[1:] {
		if x < acc {
			acc = x
		}
	}
	return acc
}

// Max{{.N}} returns the largest element of a.
func Max{{.N}}[T array.Number](a [{{.N}}]T) T {
	acc := a[0]
	for _, x := range a[1:] {
		if x > acc {
			acc = x
		}
	}
	return acc
}
`

func main() {
	flag.Parse()
	if *minN < 2 || *maxN < *minN {
		fmt.Fprintf(os.Stderr, "genarity: invalid arity range %d..%d\n", *minN, *maxN)
		os.Exit(1)
	}

	tmpl, err := template.New("family").Parse(family)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genarity: %v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	for n := *minN; n <= *maxN; n++ {
		if err := tmpl.Execute(&buf, struct{ N int }{n}); err != nil {
			fmt.Fprintf(os.Stderr, "genarity: %v\n", err)
			os.Exit(1)
		}
	}

	formatted, err := imports.Process(*output, buf.Bytes(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genarity: format: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, formatted, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "genarity: %v\n", err)
		os.Exit(1)
	}
}
