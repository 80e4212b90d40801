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
	"os"

	"github.com/thediveo/rawsys/errno"
	"golang.org/x/sys/unix"
)

// Raw is the platform's native descriptor number: a small signed integer
// that the OS is free to reuse once the descriptor has been released. A Raw
// value is just a number without any lifecycle of its own; wrap it in an
// [FD] to give it one.
type Raw = int

// invalid marks an FD whose descriptor has been released or disowned.
const invalid Raw = -1

// FD exclusively owns one raw descriptor for its entire lifetime: at most
// one live FD may refer to a given open descriptor at any time. A finished
// FD must be [FD.Close]d (or [FD.Disown]ed if release responsibility moves
// elsewhere); afterwards it is inert and all operations on it fail with a
// bad-handle classification.
//
// An FD performs no locking; callers sharing one across goroutines must
// serialize access themselves.
type FD struct {
	raw Raw
}

// Adopt takes exclusive ownership of the raw descriptor. This is unchecked:
// by calling Adopt the caller attests that no other owner of this descriptor
// exists and that the descriptor stays out of anyone else's release path.
// Violations cannot be detected here, as any integer is a syntactically fine
// descriptor number, and result in double releases elsewhere.
func Adopt(raw Raw) *FD {
	return &FD{raw: raw}
}

// New takes exclusive ownership like [Adopt], but additionally rejects
// negative descriptor numbers, which can never refer to an open resource.
func New(raw Raw) (*FD, error) {
	if raw < 0 {
		return nil, errno.Invalid("fd.New", "negative descriptor number")
	}
	return &FD{raw: raw}, nil
}

// Raw returns the descriptor number without affecting ownership. The value
// is only valid as long as this FD has been neither closed nor disowned.
func (fd *FD) Raw() Raw {
	return fd.raw
}

// Valid reports whether this FD still owns a descriptor, that is, has been
// neither closed nor disowned.
func (fd *FD) Valid() bool {
	return fd.raw >= 0
}

// Close releases the owned descriptor, at most once. The result of the
// underlying close is discarded on purpose: when a close fails, the caller
// cannot know whether the descriptor was actually freed, and retrying risks
// closing an unrelated descriptor that the OS has meanwhile handed out
// under the same number. Closing an already closed or disowned FD does
// nothing.
func (fd *FD) Close() {
	if fd.raw < 0 {
		return
	}
	raw := fd.raw
	fd.raw = invalid
	_ = unix.Close(raw)
}

// Disown ends this FD's ownership without releasing the descriptor and
// returns the raw number; releasing it is now the caller's responsibility.
// Use this when handing a descriptor across an ownership boundary the type
// system cannot see through, such as into a foreign subsystem.
func (fd *FD) Disown() Raw {
	raw := fd.raw
	fd.raw = invalid
	return raw
}

// Borrow returns a transient, non-owning view of the owned descriptor.
// Borrowed views must not be retained past this FD's Close or Disown.
func (fd *FD) Borrow() Borrowed {
	return Borrowed{raw: fd.raw}
}

// Dup duplicates the owned descriptor (close-on-exec set) into a new,
// independently owned FD.
func (fd *FD) Dup() (*FD, error) {
	if fd.raw < 0 {
		return nil, errno.New("dup", unix.EBADF)
	}
	dup, err := unix.FcntlInt(uintptr(fd.raw), unix.F_DUPFD_CLOEXEC, 0)
	if err != nil {
		return nil, errno.Wrap("dup", err)
	}
	return &FD{raw: dup}, nil
}

// File disowns the descriptor and hands it over to a stdlib [os.File];
// closing the returned File then releases it. The FD is inert afterwards.
func (fd *FD) File(name string) (*os.File, error) {
	if fd.raw < 0 {
		return nil, errno.New("fd.File", unix.EBADF)
	}
	return os.NewFile(uintptr(fd.Disown()), name), nil
}

// Borrowed is a transient, non-owning view of a descriptor, handed to
// operations that need "a descriptor to use now". It never releases the
// underlying descriptor and must not outlive the [FD] (or the externally
// guaranteed raw value) it was derived from.
type Borrowed struct {
	raw Raw
}

// BorrowRaw returns a non-owning view of a raw descriptor whose validity
// the caller guarantees for the duration of use.
func BorrowRaw(raw Raw) Borrowed {
	return Borrowed{raw: raw}
}

// Raw returns the viewed descriptor number.
func (b Borrowed) Raw() Raw {
	return b.raw
}

// Read reads from the viewed descriptor into p, returning the number of
// bytes read. Failures come back classified; in particular, interrupted and
// would-block outcomes are reported, never retried here.
func (b Borrowed) Read(p []byte) (int, error) {
	n, err := unix.Read(b.raw, p)
	if err != nil {
		return 0, errno.Wrap("read", err)
	}
	return n, nil
}

// Write writes p to the viewed descriptor, returning the number of bytes
// written. Failures come back classified, short writes do not.
func (b Borrowed) Write(p []byte) (int, error) {
	n, err := unix.Write(b.raw, p)
	if err != nil {
		return 0, errno.Wrap("write", err)
	}
	return n, nil
}
