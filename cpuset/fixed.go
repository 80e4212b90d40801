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
	"fmt"
	"unsafe"

	"github.com/thediveo/rawsys/errno"
	"golang.org/x/sys/unix"
)

// FixedCPUs is the capacity of a [FixedSet] in bits: the width of the OS's
// default affinity mask structure (CPU_SETSIZE).
const FixedCPUs = uint(unsafe.Sizeof(unix.CPUSet{}) * 8)

// FixedSet is a CPU bit string of fixed capacity [FixedCPUs], backed
// directly by the OS's default affinity mask structure, so it passes to the
// scheduling-affinity syscalls without any conversion. Bit i corresponds to
// CPU number i.
//
// Unlike the growing [Set], operating on a CPU number beyond the fixed
// capacity is a contract violation reported as an invalid argument, never
// silently ignored.
type FixedSet struct {
	mask unix.CPUSet
}

// New returns a FixedSet with all bits clear.
func New() *FixedSet {
	return &FixedSet{}
}

// FromNative returns a FixedSet initialized from a copy of the given native
// affinity mask.
func FromNative(mask *unix.CPUSet) *FixedSet {
	return &FixedSet{mask: *mask}
}

func (f *FixedSet) check(op string, cpu uint) error {
	if cpu >= FixedCPUs {
		return errno.Invalid(op,
			fmt.Sprintf("cpu number %d beyond fixed mask width %d", cpu, FixedCPUs))
	}
	return nil
}

// Set puts cpu into the set.
func (f *FixedSet) Set(cpu uint) error {
	if err := f.check("cpuset.Set", cpu); err != nil {
		return err
	}
	f.mask.Set(int(cpu))
	return nil
}

// Clear takes cpu out of the set.
func (f *FixedSet) Clear(cpu uint) error {
	if err := f.check("cpuset.Clear", cpu); err != nil {
		return err
	}
	f.mask.Clear(int(cpu))
	return nil
}

// IsSet reports whether cpu is in the set.
func (f *FixedSet) IsSet(cpu uint) (bool, error) {
	if err := f.check("cpuset.IsSet", cpu); err != nil {
		return false, err
	}
	return f.mask.IsSet(int(cpu)), nil
}

// Count returns the total addressable capacity of the set in bits, which for
// the fixed variant is always [FixedCPUs]. It is not the number of CPUs
// currently in the set.
func (f *FixedSet) Count() int {
	return int(FixedCPUs)
}

// Native returns the backing native affinity mask, for passing to syscall
// wrappers expecting the OS structure. The mask is not a copy; it shares
// storage with this set.
func (f *FixedSet) Native() *unix.CPUSet {
	return &f.mask
}

// PinTask restricts the task (thread) with the passed tid to the CPUs in
// this set. A tid of zero pins the calling thread; make sure to have the
// OS-level thread locked to the calling goroutine in this case.
func (f *FixedSet) PinTask(tid int) error {
	return errno.Wrap("sched_setaffinity", unix.SchedSetaffinity(tid, &f.mask))
}

// TaskFixed returns the affinity mask of the task (thread) with the passed
// tid as a FixedSet; zero queries the calling thread. Tasks on systems with
// more CPUs than [FixedCPUs] should use [Affinity] instead.
func TaskFixed(tid int) (*FixedSet, error) {
	var f FixedSet
	if err := unix.SchedGetaffinity(tid, &f.mask); err != nil {
		return nil, errno.Wrap("sched_getaffinity", err)
	}
	return &f, nil
}
