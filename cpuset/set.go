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

	"github.com/thediveo/rawsys/errno"
)

// MaxCPUs bounds the growth of dynamic [Set]s. It matches the largest number
// of CPUs mainstream kernels are configured for (NR_CPUS), so any CPU number
// the OS can actually report fits, while a stray huge index cannot balloon
// the backing storage.
const MaxCPUs = 8192

// Set is a dynamically growing CPU bit string, such as used for CPU affinity
// masks with a runtime-determined width. Bit i corresponds to CPU number i,
// with the words in native order, so a Set's backing array round-trips
// through [sched_getaffinity(2)] unchanged.
//
// The zero value (or [NewDynamic]) is an empty set without any backing
// storage; storage grows on [Set.Add] only. Sets are values without any
// internal locking.
//
// [sched_getaffinity(2)]: https://man7.org/linux/man-pages/man2/sched_getaffinity.2.html
type Set []uint64

const (
	wordBytes   = 8
	bitsPerWord = wordBytes * 8
)

// NewDynamic returns an empty Set with zero capacity.
func NewDynamic() Set {
	return Set{}
}

func wordIndex(cpu uint) int {
	return int(cpu / bitsPerWord)
}

func wordMask(cpu uint) uint64 {
	return uint64(1) << (cpu % bitsPerWord)
}

// IsSet reports whether cpu is in this set. CPU numbers beyond the current
// capacity are simply not in the set; they are never an error here, as
// capacity only ever grows when adding.
func (s Set) IsSet(cpu uint) bool {
	if cpu >= uint(len(s))*bitsPerWord {
		return false
	}
	return s[wordIndex(cpu)]&wordMask(cpu) != 0
}

// Count returns the total addressable capacity of this set in bits. It is
// not the number of CPUs currently in the set.
func (s Set) Count() int {
	return len(s) * bitsPerWord
}

// Add puts cpu into the set, growing the backing storage by amortized
// doubling when cpu lies beyond the current capacity. CPU numbers at or
// beyond [MaxCPUs] are a contract violation and reported as invalid
// arguments.
func (s *Set) Add(cpu uint) error {
	if cpu >= MaxCPUs {
		return errno.Invalid("cpuset.Add",
			fmt.Sprintf("cpu number %d beyond MaxCPUs", cpu))
	}
	if idx := wordIndex(cpu); idx >= len(*s) {
		words := len(*s)
		if words == 0 {
			words = 1
		}
		for words <= idx {
			words *= 2
		}
		grown := make(Set, words)
		copy(grown, *s)
		*s = grown
	}
	(*s)[wordIndex(cpu)] |= wordMask(cpu)
	return nil
}

// Remove takes cpu out of the set. Removing a CPU number beyond the current
// capacity succeeds without doing anything, as it wasn't in the set anyway;
// numbers at or beyond [MaxCPUs] are reported as invalid arguments, exactly
// as [Set.Add] would.
func (s *Set) Remove(cpu uint) error {
	if cpu >= MaxCPUs {
		return errno.Invalid("cpuset.Remove",
			fmt.Sprintf("cpu number %d beyond MaxCPUs", cpu))
	}
	if wordIndex(cpu) >= len(*s) {
		return nil
	}
	(*s)[wordIndex(cpu)] &^= wordMask(cpu)
	return nil
}

// AddRange adds the CPUs from the specified range, returning an updated Set
// that may or may not share storage with the original. It panics on an
// inverted range or a range reaching beyond [MaxCPUs], as ranges are
// expected to be program constants or OS-reported values.
func (s Set) AddRange(from, to uint) Set {
	if from > to || to >= MaxCPUs {
		panic(fmt.Sprintf("invalid range %d-%d", from, to))
	}
	if to >= uint(len(s))*bitsPerWord {
		grown := make(Set, wordIndex(to)+1)
		copy(grown, s)
		s = grown
	}
	for cpu := from; cpu <= to; cpu++ {
		s[wordIndex(cpu)] |= wordMask(cpu)
	}
	return s
}

// List returns the list of CPU ranges corresponding with this set. Whole
// all-0s and all-1s words are skipped in single steps, so large sparse or
// large dense masks list quickly.
func (s Set) List() List {
	l := List{}
	width := uint(len(s)) * bitsPerWord
	inrange := false
	var from uint
	for cpu := uint(0); cpu < width; cpu++ {
		if cpu%bitsPerWord == 0 {
			// fast-forward whole words where their contents cannot
			// change the current run.
			if word := s[wordIndex(cpu)]; (word == 0 && !inrange) ||
				(word == ^uint64(0) && inrange) {
				cpu += bitsPerWord - 1
				continue
			}
		}
		switch set := s[wordIndex(cpu)]&wordMask(cpu) != 0; {
		case set && !inrange:
			from = cpu
			inrange = true
		case !set && inrange:
			l = append(l, [2]uint{from, cpu - 1})
			inrange = false
		}
	}
	if inrange {
		l = append(l, [2]uint{from, width - 1})
	}
	return l
}

// String returns the CPUs in this set in textual list format, such as
// "0-3,8".
func (s Set) String() string {
	return s.List().String()
}
