package app

import (
	"slices"
	"strings"

	"github.com/agbru/daakit/internal/config"
	apperrors "github.com/agbru/daakit/internal/errors"
	"github.com/agbru/daakit/internal/input"
	"github.com/agbru/daakit/internal/knapsack"
	"github.com/agbru/daakit/internal/sequencing"
)

// instance is one fully resolved problem input.
type instance struct {
	problem  string
	n        int
	mode     string
	jobs     []sequencing.Job
	items    []knapsack.FractionalItem
	capacity float64
}

// resolveInstance builds the problem input from -input when set, otherwise
// from the -n, -mode, -jobs, -items and -capacity flags. Values present in
// the file take precedence over flags; a file without jobs or items falls
// back to -jobs or -items.
func (a *Application) resolveInstance() (instance, error) {
	cfg := a.Config
	inst := instance{problem: cfg.Problem, n: cfg.N, mode: strings.ToLower(cfg.Mode), capacity: cfg.Capacity}

	if cfg.InputFile != "" {
		f, err := input.LoadFile(cfg.InputFile)
		if err != nil {
			return instance{}, err
		}
		if f.Problem != "" {
			if !slices.Contains(config.Problems, f.Problem) {
				return instance{}, apperrors.NewConfigError("input file: unknown problem %q", f.Problem)
			}
			inst.problem = f.Problem
		}
		if f.N != nil {
			inst.n = *f.N
		}
		if f.Mode != "" {
			inst.mode = strings.ToLower(f.Mode)
		}
		if f.Capacity != nil {
			inst.capacity = *f.Capacity
		}
		if len(f.Jobs) > 0 {
			inst.jobs = f.SequencingJobs()
		}
		if len(f.Items) > 0 {
			inst.items = f.FractionalItems()
		}
	}

	var err error
	switch inst.problem {
	case config.ProblemJobs:
		if inst.jobs == nil {
			inst.jobs, err = input.ParseJobs(cfg.Jobs)
			err = apperrors.WrapError(err, "-jobs")
		}
	case config.ProblemFractional, config.ProblemKnapsack:
		if inst.items == nil {
			inst.items, err = input.ParseFractionalItems(cfg.Items)
			err = apperrors.WrapError(err, "-items")
		}
	}
	if err != nil {
		return instance{}, err
	}
	return inst, nil
}
