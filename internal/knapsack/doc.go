// Package knapsack solves two knapsack variants that illustrate different
// design paradigms.
//
// Fractional (greedy): items may be split, so taking items in order of
// profit per unit weight and cutting the last one to fit is optimal.
//
// ZeroOne (dynamic programming): items are taken whole or not at all. The
// answer is best[n][W] of the table
//
//	best[i][w] = max(best[i-1][w], profit[i-1] + best[i-1][w-weight[i-1]])
//
// which ZeroOne evaluates in a single row of W+1 cells and BuildTable keeps
// in full so the chosen items can be recovered.
package knapsack
