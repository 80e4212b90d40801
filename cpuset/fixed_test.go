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

package cpuset

import (
	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"

	"github.com/thediveo/rawsys/errno"
)

var _ = Describe("fixed-capacity cpu sets", func() {

	It("has the OS's default mask width", func() {
		Expect(FixedCPUs).To(Equal(uint(1024)))
		Expect(New().Count()).To(Equal(1024))
	})

	It("round-trips set, test and clear over the whole width", func() {
		f := New()
		for cpu := uint(0); cpu < FixedCPUs; cpu++ {
			Expect(Successful(f.IsSet(cpu))).To(BeFalse(), "cpu %d", cpu)
		}
		Expect(f.Set(0)).To(Succeed())
		Expect(f.Set(63)).To(Succeed())
		Expect(f.Set(64)).To(Succeed())
		Expect(f.Set(FixedCPUs - 1)).To(Succeed())
		for cpu := uint(0); cpu < FixedCPUs; cpu++ {
			expected := cpu == 0 || cpu == 63 || cpu == 64 || cpu == FixedCPUs-1
			Expect(Successful(f.IsSet(cpu))).To(Equal(expected), "cpu %d", cpu)
		}
		Expect(f.Clear(63)).To(Succeed())
		Expect(Successful(f.IsSet(63))).To(BeFalse())
	})

	It("rejects out-of-range CPU numbers instead of ignoring them", func() {
		f := New()
		Expect(errno.KindOf(f.Set(FixedCPUs))).To(Equal(errno.InvalidArgument))
		Expect(errno.KindOf(f.Clear(FixedCPUs))).To(Equal(errno.InvalidArgument))
		_, err := f.IsSet(FixedCPUs)
		Expect(errno.KindOf(err)).To(Equal(errno.InvalidArgument))
	})

	It("shares its bits with the native mask structure", func() {
		f := New()
		Expect(f.Set(1)).To(Succeed())
		Expect(f.Set(64)).To(Succeed())
		native := f.Native()
		Expect(native.IsSet(1)).To(BeTrue())
		Expect(native.IsSet(64)).To(BeTrue())
		Expect(native.Count()).To(Equal(2))

		native.Set(2) // no copy: mutating the native mask mutates the set
		Expect(Successful(f.IsSet(2))).To(BeTrue())

		clone := FromNative(native)
		native.Clear(2) // a FromNative set however is a copy
		Expect(Successful(clone.IsSet(2))).To(BeTrue())
	})

})
