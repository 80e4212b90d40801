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

import (
	"unsafe"

	"github.com/thediveo/rawsys/errno"
	"github.com/thediveo/rawsys/fd"
	"golang.org/x/sys/unix"
)

// Do issues the device-control request on the borrowed descriptor, passing a
// pointer to the request payload; arg must point to memory matching the
// payload size the request code was encoded with, and must be kept alive by
// the caller across the call. The kernel reads and/or fills the payload
// according to the request's direction. Do returns the call's (rarely used)
// non-negative result value, or a classified error.
func Do(b fd.Borrowed, req Request, arg unsafe.Pointer) (uintptr, error) {
	r1, _, e := unix.Syscall(unix.SYS_IOCTL,
		uintptr(b.Raw()), uintptr(req), uintptr(arg))
	return errno.Result("ioctl", r1, e)
}

// DoInt issues a device-control request that passes a plain integer value
// instead of a payload pointer.
func DoInt(b fd.Borrowed, req Request, value uintptr) (uintptr, error) {
	r1, _, e := unix.Syscall(unix.SYS_IOCTL,
		uintptr(b.Raw()), uintptr(req), value)
	return errno.Result("ioctl", r1, e)
}

// Exec issues a device-control request that transfers no payload; the
// request code alone is the operation.
func Exec(b fd.Borrowed, req Request) error {
	_, _, e := unix.Syscall(unix.SYS_IOCTL,
		uintptr(b.Raw()), uintptr(req), 0)
	if e != 0 {
		return errno.New("ioctl", e)
	}
	return nil
}
