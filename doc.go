// Package unty lets generic code ask whether a type parameter is a specific
// concrete type and, if so, reinterpret the value as that type without an
// interface box round trip.
//
// This is mostly useful inside generic functions, where the concrete type
// behind a parameter is unknown but a specialization exists for one:
//
//	func frob[S any](s S) {
//		if n, err := unty.To[uint8](s); err == nil {
//			// s is a uint8 with value n; take the fast path.
//			_ = n
//		}
//	}
//
// Identity is computed from the static type parameters, never from a value's
// dynamic type: To[int](any(5)) is a mismatch, because Src is any. Use a
// plain type assertion when the input is already an interface.
//
// # Safety
//
// A successful cast yields a second handle over the exact bits of the input.
// It never validates, copies, or extends the life of any memory the value
// points into: casting a string or slice view does not make its backing data
// live longer, and [TypeID] carries no information about where referenced
// data came from. If the value owns a resource, release it through exactly
// one of the two handles.
package unty
