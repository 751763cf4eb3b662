// Package convert provides functions to convert between different types,
// with a zero-cost identity fast path when the source already has the
// requested type.
//
// It uses [unty] to detect and reinterpret exact type matches without
// running any conversion logic, [safemath] for integer conversions to
// ensure safety against overflows/underflows, silent truncation, and other
// common pitfalls when converting between numeric types, and [cast] for
// robust and flexible casting between non-integer types.
package convert
