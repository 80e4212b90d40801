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

/*
Package ioctl encodes device-control request codes and issues the
corresponding requests on borrowed descriptors.

Request codes pack a transfer direction, a driver group byte, a command
number, and the payload size into a single 32-bit value; see [Encode] and the
[IO], [IOR], [IOW] and [IOWR] shorthands matching the kernel's macros of the
same names. Two mutually incompatible bit layouts exist in the wild, the
Linux _IOC protocol (with a legacy variant on mips and powerpc) and the BSD
IOCPARM protocol, and the right one is picked at compile time for the build
target, never detected at run time.

Payload sizes wider than the layout's size field are truncated by masking
rather than rejected. This mirrors the kernel macros bit for bit and existing
request-code tables depend on the exact truncated values; it does mean that
size arguments must come from trusted, compile-time-known payload types.
*/
package ioctl
