package sequencing

import (
	"fmt"
	"math"

	apperrors "github.com/agbru/daakit/internal/errors"
)

// Job is a unit-time task that earns Profit if it finishes by Deadline.
type Job struct {
	// ID is a unique label such as "A".
	ID string
	// Deadline is the latest slot (1-based) in which the job may run.
	Deadline int
	// Profit is earned only if the job is scheduled.
	Profit float64
}

// Assignment places a job in a time slot.
type Assignment struct {
	Slot  int
	JobID string
}

// Schedule is the result of Sequence.
type Schedule struct {
	// Assignments lists occupied slots in ascending slot order.
	Assignments []Assignment
	// TotalProfit is the sum of the profits of the scheduled jobs.
	TotalProfit float64
	// Count is the number of scheduled jobs.
	Count int
	// MaxDeadline is the number of slots considered.
	MaxDeadline int
	// Dropped lists the IDs of jobs that found no free slot, in the order
	// they were considered.
	Dropped []string
}

// JobIDs returns the scheduled job IDs in slot order.
func (s Schedule) JobIDs() []string {
	ids := make([]string, len(s.Assignments))
	for i, a := range s.Assignments {
		ids[i] = a.JobID
	}
	return ids
}

// Validate checks that s is a feasible schedule for jobs: every slot is used
// at most once, every job at most once, and no job runs after its deadline.
func (s Schedule) Validate(jobs []Job) error {
	byID := make(map[string]Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	usedSlots := make(map[int]bool, len(s.Assignments))
	usedJobs := make(map[string]bool, len(s.Assignments))
	var profit float64
	for _, a := range s.Assignments {
		job, ok := byID[a.JobID]
		switch {
		case !ok:
			return fmt.Errorf("slot %d holds unknown job %q", a.Slot, a.JobID)
		case a.Slot < 1 || a.Slot > job.Deadline:
			return fmt.Errorf("job %q in slot %d misses its deadline %d", a.JobID, a.Slot, job.Deadline)
		case usedSlots[a.Slot]:
			return fmt.Errorf("slot %d is used twice", a.Slot)
		case usedJobs[a.JobID]:
			return fmt.Errorf("job %q is scheduled twice", a.JobID)
		}
		usedSlots[a.Slot] = true
		usedJobs[a.JobID] = true
		profit += job.Profit
	}
	if len(s.Assignments) != s.Count {
		return fmt.Errorf("count %d does not match %d assignments", s.Count, len(s.Assignments))
	}
	if math.Abs(profit-s.TotalProfit) > 1e-9*math.Max(1, math.Abs(profit)) {
		return fmt.Errorf("total profit %g does not match assignments (%g)", s.TotalProfit, profit)
	}
	return nil
}

func validateJobs(jobs []Job) error {
	seen := make(map[string]int, len(jobs))
	for i, j := range jobs {
		field := fmt.Sprintf("jobs[%d]", i)
		if j.ID == "" {
			return apperrors.NewInvalidArgument(field+".id", "must not be empty")
		}
		if prev, dup := seen[j.ID]; dup {
			return apperrors.NewInvalidArgument(field+".id", "duplicate id %q (also jobs[%d])", j.ID, prev)
		}
		seen[j.ID] = i
		if j.Deadline <= 0 {
			return apperrors.NewInvalidArgument(field+".deadline", "must be positive, got %d", j.Deadline)
		}
		if math.IsNaN(j.Profit) || math.IsInf(j.Profit, 0) || j.Profit < 0 {
			return apperrors.NewInvalidArgument(field+".profit", "must be a finite non-negative number, got %g", j.Profit)
		}
	}
	return nil
}
