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
	"sync/atomic"
	"unsafe"

	"github.com/thediveo/rawsys/errno"
	"golang.org/x/sys/unix"
)

// maskWords caches the dynamically discovered affinity mask size of this
// system, in uint64 words. This is usually much smaller than the fixed
// [FixedCPUs]-bit mask.
var maskWords atomic.Uint64

func init() {
	maskWords.Store(1)
}

// Affinity returns the affinity [Set] of the process or task with the
// passed tid. If tid is zero, the affinity of the calling thread is
// returned; make sure to have the OS-level thread locked to the calling
// goroutine in this case.
//
// The kernel rejects masks shorter than its own CPU mask width, so Affinity
// retries with doubled mask sizes until accepted and then caches the
// discovered size for subsequent calls. We use RawSyscall as
// sched_getaffinity does not block, following the stdlib's own use.
func Affinity(tid int) (Set, error) {
	words := maskWords.Load()
	cached := words
	for {
		set := make(Set, words)
		_, _, e := unix.RawSyscall(unix.SYS_SCHED_GETAFFINITY,
			uintptr(tid), uintptr(words*wordBytes),
			uintptr(unsafe.Pointer(&set[0])))
		if e != 0 {
			if e == unix.EINVAL {
				words *= 2
				continue
			}
			return nil, errno.New("sched_getaffinity", e)
		}
		// Publish the discovered size, unless another goroutine meanwhile
		// published an even larger one.
		for !maskWords.CompareAndSwap(cached, words) {
			cached = maskWords.Load()
			if cached > words {
				break
			}
		}
		return set, nil
	}
}

// SetAffinity restricts the process or task with the passed tid to the CPUs
// in the given [Set]; zero targets the calling thread. An empty set is a
// contract violation detected before the OS gets involved.
func SetAffinity(tid int, s Set) error {
	if len(s) == 0 {
		return errno.Invalid("sched_setaffinity", "empty affinity set")
	}
	_, _, e := unix.RawSyscall(unix.SYS_SCHED_SETAFFINITY,
		uintptr(tid), uintptr(uint64(len(s))*wordBytes),
		uintptr(unsafe.Pointer(&s[0])))
	if e != 0 {
		return errno.New("sched_setaffinity", e)
	}
	return nil
}
