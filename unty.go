package unty

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrTypeMismatch is wrapped by the error [To] returns when Src and Target
// are not the same type.
var ErrTypeMismatch = errors.New("type mismatch")

// To reinterprets v as Target if Src and Target are the same type.
//
// On a match the result carries exactly v's bit pattern. The bits are read
// through a same-layout pointer reinterpret, so nothing is boxed into an
// interface and no conversion logic runs. The result is a second handle
// over those bits: if the value owns a resource, the caller must release it
// through exactly one of v and the result, not both.
//
// On a mismatch To returns the zero Target and an error wrapping
// [ErrTypeMismatch]. v is not read, copied, or altered on this path; the
// caller keeps it untouched. To never panics.
//
// The comparison uses the static type parameters (see [TypeEqual]); passing
// an interface value makes Src the interface type, not the dynamic type
// inside it.
func To[Target, Src any](v Src) (Target, error) {
	if !TypeEqual[Src, Target]() {
		var zero Target
		return zero, fmt.Errorf("%w: %s is not %s", ErrTypeMismatch, IDOf[Src](), IDOf[Target]())
	}

	// Identical types have identical layouts, so rereading v's bits as
	// Target is exact.
	return *(*Target)(unsafe.Pointer(&v)), nil
}

// Must is like [To] but panics on a type mismatch.
func Must[Target, Src any](v Src) Target {
	t, err := To[Target](v)
	if err != nil {
		panic(err)
	}

	return t
}
