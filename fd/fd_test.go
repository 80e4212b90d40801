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

package fd

import (
	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"

	"github.com/thediveo/rawsys/errno"
	"golang.org/x/sys/unix"
)

// pipe returns the two ends of a fresh pipe, each independently owned.
func pipe() (r, w *FD) {
	GinkgoHelper()
	var fds [2]int
	Expect(unix.Pipe(fds[:])).To(Succeed())
	return Adopt(fds[0]), Adopt(fds[1])
}

// isOpen reports whether the raw descriptor number currently refers to an
// open descriptor of this process.
func isOpen(raw Raw) bool {
	_, err := unix.FcntlInt(uintptr(raw), unix.F_GETFD, 0)
	return err == nil
}

var _ = Describe("owned descriptors", func() {

	It("adopts and reports raw descriptor numbers", func() {
		r, w := pipe()
		defer r.Close()
		defer w.Close()
		Expect(r.Valid()).To(BeTrue())
		Expect(r.Raw()).NotTo(BeNumerically("<", 0))
		Expect(r.Borrow().Raw()).To(Equal(r.Raw()))
	})

	It("rejects adopting negative numbers through the checked entry point", func() {
		_, err := New(-1)
		Expect(err).To(HaveOccurred())
		Expect(errno.KindOf(err)).To(Equal(errno.InvalidArgument))
	})

	It("releases on Close, exactly once, errors swallowed", func() {
		r, w := pipe()
		defer w.Close()
		raw := r.Raw()
		Expect(isOpen(raw)).To(BeTrue())

		r.Close()
		Expect(r.Valid()).To(BeFalse())
		Expect(isOpen(raw)).To(BeFalse())

		// by invalidation, not by flag-checking: a second Close never
		// reaches the OS again.
		r.Close()
	})

	It("fails with a bad-handle classification once released", func() {
		r, w := pipe()
		w.Close()
		raw := r.Raw()
		r.Close()

		_, err := BorrowRaw(raw).Read(make([]byte, 1))
		Expect(err).To(HaveOccurred())
		Expect(errno.KindOf(err)).To(Equal(errno.BadHandle))
	})

	It("disowns without releasing", func() {
		r, w := pipe()
		defer w.Close()
		raw := r.Disown()
		Expect(r.Valid()).To(BeFalse())
		Expect(isOpen(raw)).To(BeTrue())

		r.Close() // must not touch the disowned descriptor
		Expect(isOpen(raw)).To(BeTrue())

		Expect(unix.Close(raw)).To(Succeed())
	})

	It("duplicates into an independent owner", func() {
		r, w := pipe()
		defer r.Close()

		dup := Successful(w.Dup())
		w.Close()

		// the duplicate must survive the original's release.
		Expect(Successful(dup.Borrow().Write([]byte("!")))).To(Equal(1))
		dup.Close()

		buf := make([]byte, 4)
		Expect(Successful(r.Borrow().Read(buf))).To(Equal(1))
		Expect(buf[0]).To(Equal(byte('!')))
	})

	It("cannot duplicate a released descriptor", func() {
		r, w := pipe()
		defer w.Close()
		r.Close()
		Expect(r.Dup()).Error().To(HaveOccurred())
	})

	It("hands ownership over to an os.File", func() {
		r, w := pipe()
		defer r.Close()
		raw := w.Raw()

		f := Successful(w.File("pipe-write-end"))
		Expect(w.Valid()).To(BeFalse())
		Expect(isOpen(raw)).To(BeTrue())

		Expect(f.Close()).To(Succeed())
		Expect(isOpen(raw)).To(BeFalse())
	})

})

var _ = Describe("borrowed descriptor views", func() {

	It("writes through one end and reads through the other", func() {
		r, w := pipe()
		rraw, wraw := r.Raw(), w.Raw()

		Expect(Successful(w.Borrow().Write([]byte("odd")))).To(Equal(3))

		buf := make([]byte, 16)
		n := Successful(r.Borrow().Read(buf))
		Expect(string(buf[:n])).To(Equal("odd"))

		r.Close()
		w.Close()

		// both raw values are dead now.
		_, err := BorrowRaw(rraw).Read(buf)
		Expect(errno.KindOf(err)).To(Equal(errno.BadHandle))
		_, err = BorrowRaw(wraw).Write([]byte("x"))
		Expect(errno.KindOf(err)).To(Equal(errno.BadHandle))
	})

})
