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
Package errno turns raw OS error numbers into typed, classified error values.

Syscall wrappers hand this package the raw outcome of a call (either the
(r1, errno) pair of [unix.Syscall] via [Result], or the error value of one of
the golang.org/x/sys/unix call wrappers via [Wrap]) and receive back either
success or an [*Error] that carries a platform-independent [Kind]
classification next to the untouched raw number.

The classification is deliberately closed and small: callers branch on the
handful of categories that actually inform a decision, such as retrying on
[Interrupted] or [WouldBlock], and fall through to [Other] for everything
else. The raw number always stays available for diagnostics.

On the errno capture ordering: the Go runtime's syscall stubs read the
thread's errno value immediately at the call site, before any other code
(including the allocator or the scheduler) gets a chance to clobber it. This
package therefore only ever sees already-captured numbers and performs no
errno reads of its own. Do not interleave other calls between a failing
syscall and handing its outcome to this package.

This package never retries a failed call; retry-on-EINTR and similar policies
belong to the individual syscall wrappers.
*/
package errno
