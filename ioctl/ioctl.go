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

package ioctl

// Request is a packed device-control request code, assembled from a
// direction, a group (or "type") byte identifying a driver-specific request
// namespace, a command number within that group, and the size of the request
// payload. The bit layout is ABI-mandated and differs between platform
// families; it is selected at compile time, as a code packed with the wrong
// layout silently addresses the wrong device operation.
type Request uint32

// Dir is the data transfer direction of a device-control request, as seen
// from userland: [Read] means the kernel fills the payload, [Write] means
// the kernel consumes it. The numeric values are platform-specific; always
// use the constants.
type Dir uint32

// ReadWrite marks a request whose payload is both consumed and filled by the
// kernel.
const ReadWrite = Read | Write

// IO encodes a request that transfers no payload.
func IO(group, nr uint8) Request {
	return Encode(None, group, nr, 0)
}

// IOR encodes a request whose payload of the given size is filled in by the
// kernel.
func IOR(group, nr uint8, size uintptr) Request {
	return Encode(Read, group, nr, size)
}

// IOW encodes a request whose payload of the given size is consumed by the
// kernel.
func IOW(group, nr uint8, size uintptr) Request {
	return Encode(Write, group, nr, size)
}

// IOWR encodes a request whose payload of the given size is first consumed
// and then filled in by the kernel.
func IOWR(group, nr uint8, size uintptr) Request {
	return Encode(ReadWrite, group, nr, size)
}
