// Package cli renders results of the algorithm commands for a terminal:
// comparison tables for the Fibonacci variants, schedules, knapsack portions
// and dynamic programming tables, plus single-line quiet forms for scripts.
package cli
