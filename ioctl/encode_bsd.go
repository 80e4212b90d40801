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

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package ioctl

// The BSD request-code layout: explicit direction bits at the top, a 13-bit
// payload size field (IOCPARM_MASK) at bit 16, the group byte at bit 8 and
// the command number in the lowest byte. Note that relative to Linux the
// group and size fields trade places and even no-payload requests carry a
// non-zero direction marker (IOC_VOID).
const (
	// None transfers no payload (IOC_VOID).
	None Dir = 0x20000000
	// Write transfers the payload from userland to the kernel (IOC_IN).
	Write Dir = 0x80000000
	// Read transfers the payload from the kernel to userland (IOC_OUT).
	Read Dir = 0x40000000

	iocparmMask = 0x1fff
)

// Encode packs a device-control request code in this platform's layout.
//
// There is no error path: any group and command byte is valid, and a payload
// size wider than the 13-bit IOCPARM field has its excess bits silently
// dropped by masking. Device tooling compares against exactly these
// truncated values, so the truncation is contract, not a fault; but do not
// feed untrusted sizes here.
func Encode(dir Dir, group, nr uint8, size uintptr) Request {
	return Request(uint32(dir) |
		(uint32(size)&iocparmMask)<<16 |
		uint32(group)<<8 |
		uint32(nr))
}
