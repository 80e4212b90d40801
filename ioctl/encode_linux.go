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

//go:build linux

package ioctl

// The Linux _IOC layout: command number in the lowest byte, group byte above
// it, then the payload size field, and the direction in the topmost bits.
// The direction values and the size field width come from the per-arch
// constants, as the mips and powerpc ports kept their historic layout.
const (
	nrBits   = 8
	typeBits = 8

	nrShift   = 0
	typeShift = nrShift + nrBits
	sizeShift = typeShift + typeBits
	dirShift  = sizeShift + sizeBits

	sizeMask = (1 << sizeBits) - 1
)

// Encode packs a device-control request code in this platform's layout.
//
// There is no error path: any group and command byte is valid, and a payload
// size wider than the layout's size field has its excess bits silently
// dropped by masking. Kernel tooling compares against exactly these
// truncated values, so the truncation is contract, not a fault; but do not
// feed untrusted sizes here.
func Encode(dir Dir, group, nr uint8, size uintptr) Request {
	return Request(uint32(dir)<<dirShift |
		(uint32(size)&sizeMask)<<sizeShift |
		uint32(group)<<typeShift |
		uint32(nr)<<nrShift)
}
