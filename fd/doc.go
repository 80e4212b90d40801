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
Package fd models ownership of raw OS descriptors, so that higher-level
syscall wrappers never juggle unchecked integers.

A descriptor number ([Raw]) flows through exactly three capability roles:

  - [FD] exclusively owns a descriptor and is responsible for its eventual
    release; obtain one from [Adopt] (or [New]) right where a syscall
    allocates the descriptor.
  - [Borrowed] is a transient view for "use now, release never" situations,
    derived via [FD.Borrow], or via [BorrowRaw] for externally guaranteed
    raw values.
  - [FD.Disown] converts back to a bare [Raw] number when release
    responsibility moves somewhere this package cannot see, for example into
    [FD.File].

The single-owner discipline only holds within these types: nothing stops code
elsewhere from reconstructing and double-releasing a raw number behind this
package's back, so keep all descriptor traffic flowing through [Adopt],
[FD.Disown] and [BorrowRaw].

Release failures are swallowed, deliberately: see [FD.Close].
*/
package fd
