package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/daakit/internal/errors"
	"github.com/agbru/daakit/internal/knapsack"
	"github.com/agbru/daakit/internal/sequencing"
)

func isConfigError(err error) bool {
	var configErr apperrors.ConfigError
	return errors.As(err, &configErr)
}

func TestParseJobs(t *testing.T) {
	t.Parallel()
	jobs, err := ParseJobs(" A:2:100, B:1:19 ,,C:2:27.5")
	require.NoError(t, err)
	assert.Equal(t, []sequencing.Job{
		{ID: "A", Deadline: 2, Profit: 100},
		{ID: "B", Deadline: 1, Profit: 19},
		{ID: "C", Deadline: 2, Profit: 27.5},
	}, jobs)

	empty, err := ParseJobs("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseJobs_Errors(t *testing.T) {
	t.Parallel()
	for _, spec := range []string{"A:2", "A:two:100", "A:2:lots", "A:1:2:3"} {
		_, err := ParseJobs(spec)
		assert.True(t, isConfigError(err), "ParseJobs(%q) error = %v", spec, err)
	}
}

func TestParseJobs_LeavesSemanticChecksToAlgorithm(t *testing.T) {
	t.Parallel()
	jobs, err := ParseJobs("A:0:10")
	require.NoError(t, err)
	_, err = sequencing.Sequence(jobs)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestParseFractionalItems(t *testing.T) {
	t.Parallel()
	items, err := ParseFractionalItems("10:60, 2.5:7")
	require.NoError(t, err)
	assert.Equal(t, []knapsack.FractionalItem{{Weight: 10, Profit: 60}, {Weight: 2.5, Profit: 7}}, items)

	_, err = ParseFractionalItems("10")
	assert.True(t, isConfigError(err))
	_, err = ParseFractionalItems("x:1")
	assert.True(t, isConfigError(err))
}

func TestParseItems(t *testing.T) {
	t.Parallel()
	items, err := ParseItems("10:60,20:100")
	require.NoError(t, err)
	assert.Equal(t, []knapsack.Item{{Weight: 10, Profit: 60}, {Weight: 20, Profit: 100}}, items)

	_, err = ParseItems("2.5:7")
	assert.True(t, isConfigError(err))
}

func TestIntegerCapacity(t *testing.T) {
	t.Parallel()
	c, err := IntegerCapacity(50)
	require.NoError(t, err)
	assert.Equal(t, 50, c)

	neg, err := IntegerCapacity(-4)
	require.NoError(t, err)
	assert.Equal(t, -4, neg)

	_, err = IntegerCapacity(12.5)
	assert.True(t, isConfigError(err))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	jobsFile, err := LoadFile(filepath.Join("testdata", "jobs.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "jobs", jobsFile.Problem)
	require.Len(t, jobsFile.SequencingJobs(), 5)
	assert.Equal(t, sequencing.Job{ID: "A", Deadline: 2, Profit: 100}, jobsFile.SequencingJobs()[0])

	knapsackFile, err := LoadFile(filepath.Join("testdata", "knapsack.yaml"))
	require.NoError(t, err)
	require.NotNil(t, knapsackFile.Capacity)
	assert.Equal(t, 50.0, *knapsackFile.Capacity)
	assert.Len(t, knapsackFile.FractionalItems(), 3)

	_, err = LoadFile(filepath.Join("testdata", "missing.yaml"))
	assert.True(t, isConfigError(err))
}

func TestLoadFile_DecodeErrorNamesPath(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "typo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("problem: jobs\njbos: []\n"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, isConfigError(err), "wrapped decode error should still be a ConfigError")
	assert.True(t, strings.HasPrefix(err.Error(), path+": decoding input file:"), err.Error())
}

func TestDecode(t *testing.T) {
	t.Parallel()
	f, err := Decode([]byte("problem: fib\nn: 12\nmode: iterative\n"))
	require.NoError(t, err)
	require.NotNil(t, f.N)
	assert.Equal(t, 12, *f.N)
	assert.Equal(t, "iterative", f.Mode)

	empty, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, File{}, empty)

	_, err = Decode([]byte("problem: fib\nnn: 12\n"))
	assert.True(t, isConfigError(err), "unknown keys should be rejected")

	_, err = Decode([]byte("items: [1, 2"))
	assert.True(t, isConfigError(err))
}
