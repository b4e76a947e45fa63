package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/genetic"
	"github.com/katalvlaran/gatsp/graphio"
	"github.com/katalvlaran/gatsp/internal/cli"
	"github.com/katalvlaran/gatsp/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

// TestSolveVerifyAndHistory solves the scenario twice, then lists the runs.
func TestSolveVerifyAndHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	out, err := execute(t, "solve",
		"--config", filepath.Join("testdata", "small.yaml"),
		"--graph", filepath.Join("testdata", "scenario.json"),
		"--start", "0",
		"--seed", "1",
		"--runs", "2",
		"--db", db,
		"--verify",
		"--polish",
	)
	require.NoError(t, err, out)
	assert.Contains(t, out, "optimum: 0 → 2 → 1 → 3 → 0 (8100)")
	assert.Contains(t, out, "run 1/2")
	assert.Contains(t, out, "run 2/2")
	assert.Contains(t, out, "polished: ")

	s := store.NewSQLiteStore(db)
	require.NoError(t, s.Init(context.Background()))
	runs, err := s.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.Len(t, runs, 2)
	for _, r := range runs {
		require.NotNil(t, r.Optimum)
		assert.Equal(t, 8100.0, *r.Optimum)
		assert.Equal(t, r.Generations, len(r.History))
		assert.GreaterOrEqual(t, r.Cost, 8100.0)
		require.NotNil(t, r.Polished)
		assert.LessOrEqual(t, *r.Polished, r.Cost)
	}

	out, err = execute(t, "history", "--log-level", "error", "--db", db, "--limit", "1")
	require.NoError(t, err, out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "scenario.json")
}

// TestSolveErrors covers argument and solver failures.
func TestSolveErrors(t *testing.T) {
	graph := filepath.Join("testdata", "scenario.json")

	_, err := execute(t, "solve")
	require.Error(t, err)

	_, err = execute(t, "solve", "--graph", graph, "--runs", "0")
	require.Error(t, err)

	_, err = execute(t, "solve", "--log-level", "loud", "--graph", graph)
	require.Error(t, err)

	_, err = execute(t, "solve", "--log-level", "error", "--graph", "missing.csv")
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)

	// defaults solve; opting into distinct seeding cannot fill 100 slots from 6 tours
	out, err := execute(t, "solve", "--log-level", "error", "--graph", graph)
	require.NoError(t, err, out)
	t.Setenv("GATSP_DISTINCT_SEED", "true")
	_, err = execute(t, "solve", "--log-level", "error", "--graph", graph)
	require.ErrorIs(t, err, genetic.ErrPopulationTooLarge)
}

// TestGenerate writes a graph and solves it.
func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	_, err := execute(t, "generate", "--vertices", "12", "--max-cost", "50", "--seed", "4", "--out", path)
	require.NoError(t, err)

	g, err := graphio.LoadJSONFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12, g.VertexCount())
	assert.Equal(t, 12*11, g.EdgeCount())
	assert.Equal(t, "00", g.Vertices()[0])

	out, err := execute(t, "solve", "--log-level", "error", "--graph", path, "--population", "30", "--seed", "2")
	require.NoError(t, err, out)
	assert.Contains(t, out, "reason=stagnation")

	stdout, err := execute(t, "generate", "--vertices", "3", "--directed")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "{"))

	_, err = execute(t, "generate", "--max-cost", "0")
	require.Error(t, err)
	_, err = execute(t, "generate", "--vertices", "1")
	require.Error(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}
