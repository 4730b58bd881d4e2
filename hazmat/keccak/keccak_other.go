// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package keccak

// Lanes is always 1 on platforms without a registered vector back-end.
var Lanes = 1

// Selected always reports Scalar on platforms without a registered vector
// back-end.
func Selected() Backend {
	return Scalar
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
