// Copyright 2025 Covar Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the eager pure Go CPU backend for tensor operations.
//
// The backend evaluates every operation immediately, so the positivity
// assertion used by kernel validation runs strictly before any dependent
// computation. It supports float32 and float64 arithmetic and casts from
// float16 storage.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, backend)
package cpu

import (
	internalcpu "github.com/covar-ml/covar/internal/backend/cpu"
	"github.com/covar-ml/covar/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}
