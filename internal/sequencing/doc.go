// Package sequencing schedules unit-time jobs with deadlines so that the
// total profit is maximal.
//
// The greedy rule: consider jobs by profit, highest first, and place each one
// in the latest free slot that still meets its deadline. Filling late slots
// first keeps early slots open for jobs with tighter deadlines, which is what
// makes the greedy choice optimal.
package sequencing
