// Package fibonacci computes Fibonacci numbers two ways, naive double
// recursion and a rolling two-value loop, and reports the number of steps
// each one takes.
//
// The recursive variant is deliberately not memoized: its step count grows
// like F(n) itself (2·F(n+1)−1 invocations), which is what it is meant to
// demonstrate next to the linear step count of the iterative variant.
//
// Both variants return their step count as part of Result. No counters live
// at package level, so calls are independent and safe to run concurrently.
package fibonacci
