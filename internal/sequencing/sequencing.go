package sequencing

import (
	"cmp"
	"slices"
)

// Sequence returns a maximum-profit schedule for jobs.
//
// Jobs are considered in profit order, highest first; equal profits keep
// their input order. Each job takes the latest free slot in
// [1, min(maxDeadline, deadline)] or is dropped if none is free.
//
// Returns an InvalidArgumentError for a non-positive deadline, a negative
// profit, or an empty or duplicate ID. The input slice is not modified.
func Sequence(jobs []Job) (Schedule, error) {
	if err := validateJobs(jobs); err != nil {
		return Schedule{}, err
	}

	ordered := slices.Clone(jobs)
	slices.SortStableFunc(ordered, func(a, b Job) int {
		return cmp.Compare(b.Profit, a.Profit)
	})

	maxDeadline := 0
	for _, j := range ordered {
		maxDeadline = max(maxDeadline, j.Deadline)
	}

	// Occupancy is keyed by slot number. At most len(jobs) slots are ever
	// taken, so every scan ends within len(jobs)+1 steps however large the
	// deadlines are.
	slots := make(map[int]string, len(ordered))

	sched := Schedule{MaxDeadline: maxDeadline}
	for _, job := range ordered {
		placed := false
		for slot := min(maxDeadline, job.Deadline); slot >= 1; slot-- {
			if _, taken := slots[slot]; !taken {
				slots[slot] = job.ID
				sched.TotalProfit += job.Profit
				sched.Count++
				placed = true
				break
			}
		}
		if !placed {
			sched.Dropped = append(sched.Dropped, job.ID)
		}
	}

	sched.Assignments = make([]Assignment, 0, sched.Count)
	for slot, id := range slots {
		sched.Assignments = append(sched.Assignments, Assignment{Slot: slot, JobID: id})
	}
	slices.SortFunc(sched.Assignments, func(a, b Assignment) int {
		return cmp.Compare(a.Slot, b.Slot)
	})
	return sched, nil
}
