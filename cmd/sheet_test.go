package cmd

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathadventure/internal/problemgen"
)

func TestWriteSheetNoRepeats(t *testing.T) {
	gen := problemgen.New(problemgen.DefaultConfig(), problemgen.WithSeed(42))

	var buf bytes.Buffer
	require.NoError(t, writeSheet(&buf, gen, problemgen.TierMiddle, 25, false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 27, "title, blank line and 25 problems")
	assert.Contains(t, lines[0], "Math Stars")

	problems := lines[2:]
	seen := make(map[string]bool)
	for _, line := range problems {
		assert.True(t, strings.HasSuffix(line, "= ____"), line)
		problem := strings.SplitN(line, ".", 2)[1]
		assert.False(t, seen[problem], "repeated problem %q", problem)
		seen[problem] = true
	}
	assert.NotContains(t, buf.String(), "Answers")
}

func TestWriteSheetAnswerKey(t *testing.T) {
	gen := problemgen.New(problemgen.DefaultConfig(), problemgen.WithSeed(7))

	var buf bytes.Buffer
	require.NoError(t, writeSheet(&buf, gen, problemgen.TierOldest, 5, true))

	out := buf.String()
	require.Contains(t, out, "Answers")
	key := strings.Split(strings.TrimSpace(strings.SplitN(out, "Answers", 2)[1]), "\n")
	assert.Len(t, key, 5)
	for _, line := range key {
		assert.NotContains(t, line, "____")
	}
}

func TestWriteSheetDeterministicWithSeed(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, writeSheet(&a, problemgen.New(problemgen.DefaultConfig(), problemgen.WithSeed(3)), problemgen.TierYoungest, 10, true))
	require.NoError(t, writeSheet(&b, problemgen.New(problemgen.DefaultConfig(), problemgen.WithSeed(3)), problemgen.TierYoungest, 10, true))
	assert.Equal(t, a.String(), b.String())
}

func TestSheetCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"sheet", "--tier", "2-4", "--count", "70", "--seed", "9"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	t.Chdir(t.TempDir())

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, errOut.String(), "only 65 different problems")
	assert.Contains(t, out.String(), "Little Learners")
	assert.Equal(t, 70, strings.Count(out.String(), "= ____"))
}

func TestSheetCommandUnknownTier(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"sheet", "--tier", "teens"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, problemgen.ErrUnknownTier)
}

func TestSheetCommandMissingEnvFile(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"sheet", "--tier", "2-4", "--env-file", filepath.Join(t.TempDir(), "nope.env")})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = rootCmd.PersistentFlags().Set("env-file", "")
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
