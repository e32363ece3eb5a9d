package fibonacci

func iterative(n int) int {
	if n <= 1 {
		return n
	}

	a, b := 0, 1
	for i := 1; i < n; i++ {
		a, b = b, a+b
	}

	return b
}

var memoized = map[int]int{
	0: 0,
	1: 1,
}

func memoizedFibonacci(n int) int {
	if m, ok := memoized[n]; ok {
		return m
	}

	out := memoizedFibonacci(n - 1)
	out += memoizedFibonacci(n - 2)
	memoized[n] = out
	return out
}
