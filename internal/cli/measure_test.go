package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	stdout, _, err := execute(t, "", "measure", "testdata/unsorted_entries.txt")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "measure", []byte(stdout))

	stdout, _, err = execute(t, "", "measure", "--mmap", "testdata/unsorted_entries.txt")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "measure", []byte(stdout))
}

func TestMeasure_Stdin(t *testing.T) {
	input, err := os.ReadFile("testdata/unsorted_entries.txt")
	require.NoError(t, err)

	stdout, _, err := execute(t, string(input), "measure", "-")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "measure", []byte(stdout))
}

func TestMeasure_Large(t *testing.T) {
	input := make([]byte, 0, 2*1024)
	for i := 0; i < 1024; i++ {
		input = append(input, 'a', '\n')
	}
	stdout, _, err := execute(t, string(input), "measure", "-")
	require.NoError(t, err)
	assert.Equal(t, "entry size: 3\nvocabulary size: 1,024\n", stdout)
}

func TestMeasure_MissingInput(t *testing.T) {
	_, _, err := execute(t, "", "measure", "testdata/missing.txt")
	require.Error(t, err)
	assert.Equal(t, ExitStreamUnavailable, GetExitCode(err))
}

func TestAlphabet(t *testing.T) {
	stdout, _, err := execute(t, "", "alphabet")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "alphabet", []byte(stdout))
}

func TestAlphabet_Settings(t *testing.T) {
	stdout, _, err := execute(t, "", "--settings", "testdata/multigraph.json", "alphabet")
	require.NoError(t, err)
	assert.Equal(t, "0\ta\n1\tph\n2\tb\n", stdout)
}
