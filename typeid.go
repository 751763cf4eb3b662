package unty

import (
	"reflect"

	"go.dw1.io/x/hash/wyhash"
)

// TypeID is an opaque, comparable identity token for a type. Two TypeIDs
// compare equal if and only if they were derived from the same type, so a
// TypeID works as a map key for type-indexed tables.
//
// Derivation is a pure function of the type parameter: it reads no value,
// has no side effects, and is stable for the lifetime of the process. It is
// not stable across builds and must never be serialized.
type TypeID struct {
	rtype reflect.Type
}

// IDOf returns the identity token for T. T may be any type, including an
// interface type; for an interface, the token identifies the interface type
// itself, not whatever might be stored in it.
func IDOf[T any]() TypeID {
	return TypeID{rtype: reflect.TypeFor[T]()}
}

// String returns a diagnostic name for the identified type. The zero TypeID
// identifies no type and formats as "<none>".
func (id TypeID) String() string {
	if id.rtype == nil {
		return "<none>"
	}
	return id.rtype.String()
}

// Hash64 returns a 64-bit wyhash digest of the token, for callers that want
// a dense integer key instead of the token itself. Like the token, the
// digest is only meaningful within one process.
func (id TypeID) Hash64() uint64 {
	return wyhash.Sum64([]byte(id.String()))
}

// TypeEqual reports whether Src and Target are the same type.
//
// There are no false negatives: distinct types always compare unequal. The
// comparison is provenance-blind, though. It identifies types, not the
// memory a value of the type may reference, so two string views over
// differently scoped backing data are the same type. See the package
// documentation's safety note before acting on a match with [To].
func TypeEqual[Src, Target any]() bool {
	return IDOf[Src]() == IDOf[Target]()
}
