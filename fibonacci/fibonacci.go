// Package fibonacci computes terms of the Fibonacci sequence.
package fibonacci

// Fibonacci returns the n-th Fibonacci number, with Fibonacci(0) = 0 and
// Fibonacci(1) = 1. Any n <= 1, negative values included, is returned as is.
//
// The recursion is not memoized and runs in exponential time.
func Fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}
