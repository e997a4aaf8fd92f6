// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package ints holds small generic integer helpers shared by the byte
// cursor arithmetic in package utf8.
package ints

import (
	"golang.org/x/exp/constraints"
)

// Min returns whichever of a and b is not larger.
func Min[T constraints.Integer](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns whichever of a and b is not smaller.
func Max[T constraints.Integer](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// Clamp pins v to the closed interval [lo, hi], leaving it unchanged if
// it already falls inside. Used to keep a byte cursor from walking past
// the start or end of a slice after a run of Next/Prev steps.
func Clamp[T constraints.Integer](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}
