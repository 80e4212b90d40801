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

package errno

import (
	"errors"
	"strconv"

	"golang.org/x/sys/unix"
)

// Kind is the platform-independent classification of a raw OS error number.
// The enumeration is closed: error numbers without a dedicated Kind map onto
// [Other], with the raw number still preserved by the wrapping [Error] for
// diagnosis.
type Kind uint8

const (
	// Other classifies all error numbers without a dedicated Kind of their
	// own.
	Other Kind = iota
	// Interrupted: the call was interrupted by a signal before it could
	// complete (EINTR). Whether to retry is the caller's decision; this
	// package never retries on its own.
	Interrupted
	// WouldBlock: the resource is temporarily unavailable (EAGAIN, and on
	// platforms where it is a separate number, EWOULDBLOCK).
	WouldBlock
	// InvalidArgument: the OS rejected an argument (EINVAL), or a
	// caller-contract violation was detected before any syscall was
	// attempted.
	InvalidArgument
	// NotFound: no such file or directory (ENOENT).
	NotFound
	// Exists: the resource already exists (EEXIST).
	Exists
	// PermissionDenied: access or operation not permitted (EACCES, EPERM).
	PermissionDenied
	// BadHandle: the descriptor is not valid (EBADF), typically because it
	// has already been released or never referred to an open resource.
	BadHandle
)

// String returns the classification in short textual form.
func (k Kind) String() string {
	switch k {
	case Interrupted:
		return "interrupted"
	case WouldBlock:
		return "would block"
	case InvalidArgument:
		return "invalid argument"
	case NotFound:
		return "not found"
	case Exists:
		return "already exists"
	case PermissionDenied:
		return "permission denied"
	case BadHandle:
		return "bad handle"
	}
	return "other OS error"
}

// Classify maps a raw OS error number onto its [Kind]. Unrecognized numbers
// classify as [Other]; keep the raw number around (see [Error]) when
// diagnostics matter.
func Classify(e unix.Errno) Kind {
	switch e {
	case unix.EINTR:
		return Interrupted
	case unix.EAGAIN: // EWOULDBLOCK is the same number on all supported platforms
		return WouldBlock
	case unix.EINVAL:
		return InvalidArgument
	case unix.ENOENT:
		return NotFound
	case unix.EEXIST:
		return Exists
	case unix.EACCES, unix.EPERM:
		return PermissionDenied
	case unix.EBADF:
		return BadHandle
	}
	return Other
}

// Error couples the raw error number of a failed operation with its
// classification. An Error either reports an OS-observed failure (non-zero
// Errno) or a caller-contract violation detected before any syscall was
// attempted (zero Errno, Kind [InvalidArgument]); it is never both.
type Error struct {
	// Op names the operation or syscall that failed, such as "read" or
	// "sched_setaffinity".
	Op string
	// Errno is the raw OS error number; zero when the failure never reached
	// the OS.
	Errno unix.Errno
	// Kind classifies the failure; always [Classify](Errno) for OS-observed
	// failures.
	Kind Kind

	detail string
}

// New wraps and classifies a raw OS error number, where op names the failing
// operation.
func New(op string, e unix.Errno) *Error {
	return &Error{Op: op, Errno: e, Kind: Classify(e)}
}

// Invalid reports a caller-contract violation that was detected before any
// syscall was attempted, such as an index beyond a fixed bitset's width or a
// path that cannot be represented. Its Errno is zero as the OS never saw the
// operation.
func Invalid(op string, detail string) *Error {
	return &Error{Op: op, Kind: InvalidArgument, detail: detail}
}

// Error returns the failure in textual form, keeping the raw error number
// visible for OS-observed failures.
func (e *Error) Error() string {
	if e.Errno == 0 {
		if e.detail != "" {
			return e.Op + ": " + e.detail
		}
		return e.Op + ": " + InvalidArgument.String()
	}
	return e.Op + ": " + e.Errno.Error() +
		" (errno " + strconv.Itoa(int(e.Errno)) + ")"
}

// Unwrap returns the raw [unix.Errno] for OS-observed failures, so that
// errors.Is(err, unix.ENOENT) and friends keep working across this package's
// wrapping. Caller-side failures unwrap to nothing.
func (e *Error) Unwrap() error {
	if e.Errno == 0 {
		return nil
	}
	return e.Errno
}

// Is additionally matches this error against the Kind sentinels, so callers
// can branch on the classification with errors.Is(err, [ErrWouldBlock]) and
// so on, regardless of the concrete error number underneath.
func (e *Error) Is(target error) bool {
	if k, ok := target.(kindSentinel); ok {
		return e.Kind == Kind(k)
	}
	return false
}

// kindSentinel makes a Kind usable as an errors.Is target.
type kindSentinel Kind

func (k kindSentinel) Error() string {
	return Kind(k).String()
}

// The Kind sentinels, for use as errors.Is targets only: they match any
// [*Error] (and thus any error produced by this module) of that Kind. They
// are never returned as error values themselves.
var (
	ErrInterrupted      error = kindSentinel(Interrupted)
	ErrWouldBlock       error = kindSentinel(WouldBlock)
	ErrInvalidArgument  error = kindSentinel(InvalidArgument)
	ErrNotFound         error = kindSentinel(NotFound)
	ErrExists           error = kindSentinel(Exists)
	ErrPermissionDenied error = kindSentinel(PermissionDenied)
	ErrBadHandle        error = kindSentinel(BadHandle)
)

// KindOf returns the classification of err: the Kind of the first [*Error]
// in err's chain, or else the classification of the first [unix.Errno] in
// the chain. Errors foreign to this package classify as [Other], as does
// nil.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var raw unix.Errno
	if errors.As(err, &raw) {
		return Classify(raw)
	}
	return Other
}

// Result interprets the raw (r1, errno) pair as returned by [unix.Syscall]
// and its siblings: a non-zero errno means failure, anything else is success
// with r1 as the payload. The Go syscall stubs capture errno before any
// other user code can run, which is what satisfies the read-errno-first
// requirement of this layer; callers must nevertheless pass the pair on
// unmodified, without interleaving other calls.
func Result(op string, r1 uintptr, e unix.Errno) (uintptr, error) {
	if e != 0 {
		return 0, New(op, e)
	}
	return r1, nil
}

// Wrap converts an error as returned by the golang.org/x/sys/unix call
// wrappers into a classified [*Error]. A nil err stays nil. Errors that do
// not carry a raw error number classify as [Other] with the original error
// text preserved.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var raw unix.Errno
	if errors.As(err, &raw) {
		return New(op, raw)
	}
	return &Error{Op: op, Kind: Other, detail: err.Error()}
}
