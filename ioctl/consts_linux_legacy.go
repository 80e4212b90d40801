// Copyright 2026 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

//go:build linux && (mips || mipsle || mips64 || mips64le || ppc64 || ppc64le)

package ioctl

// The mips and powerpc ports inherited their request-code protocol from the
// systems they once shared binaries with, with explicit direction bits and a
// size field one bit narrower than the generic protocol's.
const (
	// None transfers no payload.
	None Dir = 1
	// Write transfers the payload from userland to the kernel.
	Write Dir = 4
	// Read transfers the payload from the kernel to userland.
	Read Dir = 2

	sizeBits = 13
)
