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

//go:build linux && !mips && !mipsle && !mips64 && !mips64le && !ppc64 && !ppc64le

package ioctl

import (
	"unsafe"

	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/ginkgo/v2/dsl/table"
	. "github.com/onsi/gomega"

	"golang.org/x/sys/unix"
)

// The expected request codes below are pinned against the values the
// kernel's own _IO/_IOR/_IOW macros produce on the generic ports; see
// https://gist.github.com/posborne/83ea6880770a1aef332e for the C
// cross-check.
var _ = Describe("encoding request codes, generic Linux protocol", func() {

	DescribeTable("pinned request codes",
		func(req Request, expected uint32) {
			Expect(uint32(req)).To(Equal(expected))
		},
		Entry("no payload", IO('q', 10), uint32(0x0000710A)),
		Entry("no payload, large command", IO('a', 255), uint32(0x000061FF)),
		Entry("writing 1 byte", IOW('z', 10, 1), uint32(0x40017A0A)),
		Entry("writing 512 bytes", IOW('z', 10, 512), uint32(0x42007A0A)),
		Entry("reading 1 byte", IOR('z', 10, 1), uint32(0x80017A0A)),
		Entry("reading 512 bytes", IOR('z', 10, 512), uint32(0x82007A0A)),
		Entry("reading and writing", IOWR('z', 10, 512), uint32(0xC2007A0A)),
	)

	It("truncates oversized payload sizes exactly, by masking", func() {
		// 1<<32 has no bits within the size field: the excess bits get
		// dropped, they never spill into neighboring fields and never turn
		// into an error. The shift is kept out of constant arithmetic so
		// this also compiles on 32-bit targets, where it shifts out to the
		// same all-dropped size of zero.
		one := uintptr(1)
		Expect(uint32(IOW('z', 10, one<<32))).To(Equal(uint32(0x40007A0A)))
		Expect(uint32(IOR('z', 10, one<<32))).To(Equal(uint32(0x80007A0A)))
		Expect(uint32(IOW('z', 10, (1<<14)+1))).To(Equal(uint32(0x40017A0A)))
	})

	It("agrees with request codes shipped by the platform headers", func() {
		// FS_IOC_GETFLAGS is _IOR('f', 1, long).
		Expect(IOR('f', 1, unsafe.Sizeof(uintptr(0)))).To(
			Equal(Request(unix.FS_IOC_GETFLAGS)))
	})

})
