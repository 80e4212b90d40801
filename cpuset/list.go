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

package cpuset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thediveo/faf"
	"github.com/thediveo/rawsys/errno"
)

// List is a list of CPU [from...to] ranges, the representation the kernel
// uses in procfs pseudo files such as “Cpus_allowed_list”. CPU numbers start
// at zero. List and [Set] are logically equivalent; they differ only in
// representation.
type List [][2]uint

// String returns the CPU list in textual format, with the individual ranges
// “x-y” separated by “,” and single-CPU ranges collapsed into a plain “x”.
func (l List) String() string {
	var b strings.Builder
	for idx, cpurange := range l {
		if idx > 0 {
			b.WriteString(",")
		}
		if cpurange[0] == cpurange[1] {
			fmt.Fprintf(&b, "%d", cpurange[0])
			continue
		}
		fmt.Fprintf(&b, "%d-%d", cpurange[0], cpurange[1])
	}
	return b.String()
}

// ParseList returns the List for the given textual list format, such as
// “0-3,8”. Malformed text, inverted ranges, and CPU numbers at or beyond
// [MaxCPUs] are reported as an invalid argument, as they never reach the OS.
// The ranges of a successfully parsed List are thus always safe to convert
// into a [Set].
func ParseList(b []byte) (List, error) {
	bs := faf.NewBytestring(b)
	l := List{}
	for {
		if bs.EOL() {
			return l, nil
		}
		// each round starts at a CPU number, either on its own or opening a
		// from-to range.
		from, ok := bs.Uint64()
		if !ok {
			return nil, errno.Invalid("cpuset.ParseList",
				"expected unsigned integer number")
		}
		if bs.EOL() {
			if err := checkRange(from, from); err != nil {
				return nil, err
			}
			return append(l, [2]uint{uint(from), uint(from)}), nil
		}
		switch ch, _ := bs.Next(); ch {
		case '-':
			to, ok := bs.Uint64()
			if !ok {
				return nil, errno.Invalid("cpuset.ParseList",
					"expected unsigned integer number")
			}
			if err := checkRange(from, to); err != nil {
				return nil, err
			}
			l = append(l, [2]uint{uint(from), uint(to)})
			if bs.EOL() {
				return l, nil
			}
			// more ranges must follow after a separating comma.
			if ch, _ = bs.Next(); ch != ',' {
				return nil, errno.Invalid("cpuset.ParseList", "expected ','")
			}
		case ',':
			if err := checkRange(from, from); err != nil {
				return nil, err
			}
			l = append(l, [2]uint{uint(from), uint(from)})
		default:
			return nil, errno.Invalid("cpuset.ParseList", "expected '-' or ','")
		}
	}
}

// checkRange rejects inverted from-to ranges as well as CPU numbers no Set
// can ever hold.
func checkRange(from, to uint64) error {
	if from > to {
		return errno.Invalid("cpuset.ParseList", "inverted CPU range")
	}
	if to >= MaxCPUs {
		return errno.Invalid("cpuset.ParseList",
			fmt.Sprintf("CPU number %d beyond maximum %d", to, MaxCPUs-1))
	}
	return nil
}

// Set returns the [Set] corresponding with this List. Lists returned by
// [ParseList] always convert cleanly; hand-crafted Lists must observe
// [Set.AddRange]'s range contract.
func (l List) Set() Set {
	if len(l) == 0 {
		return Set{}
	}
	// start with the highest range so the storage gets allocated only once.
	var s Set
	for i := range l {
		r := l[len(l)-i-1]
		s = s.AddRange(r[0], r[1])
	}
	return s
}

// Remove removes the lowest CPU from this List, returning the CPU number
// together with a new List of the remaining CPUs. It panics on an empty
// List.
//
// Remove is handy for picking individual CPUs after getting the affinity
// List of a task or process.
func (l List) Remove() (cpu uint, remaining List) {
	if len(l) == 0 {
		panic("cannot remove from empty List")
	}
	lowest := l[0]
	cpu = lowest[0]
	if lowest[0] < lowest[1] {
		// the lowest range keeps further CPUs after losing its first one.
		return cpu, append(List{[2]uint{cpu + 1, lowest[1]}}, l[1:]...)
	}
	// the lowest range is exhausted and dropped entirely.
	return cpu, slices.Clone(l[1:])
}
