// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64

package keccak

import "github.com/klauspost/cpuid/v2"

// Lanes is the batch width, in states, that callers such as hazmat/kt128 use
// when grouping work for PermuteX2/PermuteX4, set from the detected CPU
// features. permuteX2 and permuteX4 permute the states one after another.
var Lanes = 1

// selected is the backend Permute reports via Selected(); on amd64 it tracks
// the widest vector extension available, even though every backend in this
// module (see keccak_generic.go and the package doc) executes the same
// verified scalar kernel under the hood.
var selected = Scalar

func init() {
	switch {
	case cpuid.CPU.Has(cpuid.AVX512F) && cpuid.CPU.Has(cpuid.AVX512VL):
		selected = AVX512
		Lanes = 4
	case cpuid.CPU.Has(cpuid.AVX2):
		selected = AVX2
		Lanes = 4
	case cpuid.CPU.Has(cpuid.SSE2):
		Lanes = 2
	}
}

// Selected returns the backend this build would dispatch to for the current
// CPU, as reported by runtime feature detection.
func Selected() Backend {
	return selected
}

// Permute applies nr rounds of Keccak-f[1600] to state in place.
func Permute(state *[200]byte, nr int) {
	f1600Generic(state, nr)
}

func permuteX2(s1, s2 *[200]byte, nr int) {
	f1600Generic(s1, nr)
	f1600Generic(s2, nr)
}

func permuteX4(s1, s2, s3, s4 *[200]byte, nr int) {
	f1600Generic(s1, nr)
	f1600Generic(s2, nr)
	f1600Generic(s3, nr)
	f1600Generic(s4, nr)
}
