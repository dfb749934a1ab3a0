package input

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/daakit/internal/errors"
	"github.com/agbru/daakit/internal/knapsack"
	"github.com/agbru/daakit/internal/sequencing"
)

// File is a YAML problem description:
//
//	problem: knapsack
//	capacity: 50
//	items:
//	  - {weight: 10, profit: 60}
//	  - {weight: 20, profit: 100}
//
// Only the fields of the selected problem are used.
type File struct {
	Problem  string     `yaml:"problem"`
	N        *int       `yaml:"n"`
	Mode     string     `yaml:"mode"`
	Capacity *float64   `yaml:"capacity"`
	Jobs     []JobSpec  `yaml:"jobs"`
	Items    []ItemSpec `yaml:"items"`
}

// JobSpec is one job in a problem file.
type JobSpec struct {
	ID       string  `yaml:"id"`
	Deadline int     `yaml:"deadline"`
	Profit   float64 `yaml:"profit"`
}

// ItemSpec is one knapsack item in a problem file.
type ItemSpec struct {
	Weight float64 `yaml:"weight"`
	Profit float64 `yaml:"profit"`
}

// LoadFile reads and decodes a problem file. Decoding errors carry the path.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, apperrors.NewConfigError("reading input file: %v", err)
	}
	f, err := Decode(data)
	if err != nil {
		return File{}, apperrors.WrapError(err, "%s", path)
	}
	return f, nil
}

// Decode parses a YAML problem document. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func Decode(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, apperrors.NewConfigError("decoding input file: %v", err)
	}
	return f, nil
}

// SequencingJobs returns the jobs of the file.
func (f File) SequencingJobs() []sequencing.Job {
	jobs := make([]sequencing.Job, len(f.Jobs))
	for i, j := range f.Jobs {
		jobs[i] = sequencing.Job{ID: j.ID, Deadline: j.Deadline, Profit: j.Profit}
	}
	return jobs
}

// FractionalItems returns the items of the file.
func (f File) FractionalItems() []knapsack.FractionalItem {
	items := make([]knapsack.FractionalItem, len(f.Items))
	for i, it := range f.Items {
		items[i] = knapsack.FractionalItem{Weight: it.Weight, Profit: it.Profit}
	}
	return items
}
