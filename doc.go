// Package adder provides numeric addition over Go's built-in numeric types.
//
// # Usage
//
//	sum := adder.Add(1, 2)       // 3
//	neg := adder.Add(1, -2)      // -1
//	f := adder.Add(0.5, 0.25)    // 0.75
//
// [Add] is pure and total: it never fails and holds no state, so any number
// of goroutines may call it concurrently.
//
// # Overflow
//
// Integer addition wraps on overflow following Go's two's-complement rules.
// Floating point addition follows IEEE-754, so NaN and infinities propagate.
//
// # Scripts
//
// The internal/runtime package exposes Add to Risor scripts as the add
// builtin, and cmd/adder evaluates such scripts from the command line.
package adder
