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
Package cpuset implements the CPU sets fed into and returned by the
scheduling-affinity syscalls, in three equivalent representations:

  - [Set] stores CPU numbers as bits in a growing bit string, sized on demand
    up to [MaxCPUs]; its backing words match the native affinity mask layout
    bit for bit, so [Affinity] and [SetAffinity] pass it to the OS without
    conversion.
  - [FixedSet] is the fixed-capacity sibling, backed by the OS's default
    CPU_SETSIZE-wide mask structure; out-of-range CPU numbers are errors
    here, not growth triggers.
  - [List] stores CPU numbers as from-to ranges, the textual format of the
    procfs “Cpus_allowed_list” fields; [ParseList] and [List.String]
    round-trip it.

Sets and Lists are plain values without shared mutable state; use them freely
per call without coordination.
*/
package cpuset
