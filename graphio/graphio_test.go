package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/core"
	"github.com/katalvlaran/gatsp/graphio"
)

var scenarioRoute = []string{"0", "2", "1", "3", "0"}

// TestLoadJSON_Scenario decodes the fixture and prices the optimal route.
func TestLoadJSON_Scenario(t *testing.T) {
	g, err := graphio.LoadJSONFile(filepath.Join("testdata", "scenario.json"))
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Vertices())
	assert.Equal(t, 12, g.EdgeCount())

	cost, err := g.PathCost(scenarioRoute)
	require.NoError(t, err)
	assert.Equal(t, 8100.0, cost)
}

// TestLoadJSON_Shapes covers diagonal skipping, isolated vertices and
// malformed documents.
func TestLoadJSON_Shapes(t *testing.T) {
	g, err := graphio.LoadJSON(strings.NewReader(`{"a": {"a": 0, "b": 1.5}, "b": {}, "c": {}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.False(t, g.HasEdge("a", "a"))
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))

	for name, doc := range map[string]string{
		"syntax":    `{"a": `,
		"null":      `null`,
		"not dict":  `{"a": 3}`,
		"not float": `{"a": {"b": "x"}}`,
	} {
		_, err = graphio.LoadJSON(strings.NewReader(doc))
		assert.ErrorIs(t, err, graphio.ErrFormat, name)
	}

	_, err = graphio.LoadJSON(strings.NewReader(`{"a": {"b": -1}}`))
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

// TestLoadJSON_Undirected mirrors symmetric costs and rejects asymmetric ones.
func TestLoadJSON_Undirected(t *testing.T) {
	g, err := graphio.LoadJSON(strings.NewReader(`{"a": {"b": 2}, "b": {"a": 2, "c": 4}}`), graphio.WithUndirected())
	require.NoError(t, err)
	assert.False(t, g.Directed())
	c, err := g.Cost("c", "b")
	require.NoError(t, err)
	assert.Equal(t, 4.0, c)

	_, err = graphio.LoadJSON(strings.NewReader(`{"a": {"b": 2}, "b": {"a": 3}}`), graphio.WithUndirected())
	assert.ErrorIs(t, err, graphio.ErrAsymmetric)
}

// TestWriteJSON_RoundTrip renders and reloads a graph.
func TestWriteJSON_RoundTrip(t *testing.T) {
	src, err := graphio.LoadJSONFile(filepath.Join("testdata", "scenario.json"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteJSON(&buf, src))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n    \"0\": {"))

	back, err := graphio.LoadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, graphio.ToDict(src), graphio.ToDict(back))

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, graphio.WriteJSONFile(path, src))
	again, err := graphio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, src.EdgeCount(), again.EdgeCount())
}

// TestLoadTSPLIB decodes the XML fixture into the same costs as the JSON one.
func TestLoadTSPLIB(t *testing.T) {
	g, inst, err := graphio.LoadTSPLIBFile(filepath.Join("testdata", "scenario.xml"))
	require.NoError(t, err)
	assert.Equal(t, "scenario4", inst.Name)
	assert.Equal(t, "gatsp test fixtures", inst.Source)

	want, err := graphio.LoadJSONFile(filepath.Join("testdata", "scenario.json"))
	require.NoError(t, err)
	assert.Equal(t, graphio.ToDict(want), graphio.ToDict(g))

	viaLoad, err := graphio.Load(filepath.Join("testdata", "scenario.xml"))
	require.NoError(t, err)
	assert.Equal(t, 4, viaLoad.VertexCount())
}

// TestLoadTSPLIB_Errors covers malformed XML documents.
func TestLoadTSPLIB_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":      `<travellingSalesmanProblemInstance><graph>`,
		"no vertices": `<travellingSalesmanProblemInstance><graph></graph></travellingSalesmanProblemInstance>`,
		"bad target":  `<travellingSalesmanProblemInstance><graph><vertex><edge cost="1">5</edge></vertex></graph></travellingSalesmanProblemInstance>`,
		"bad cost":    `<travellingSalesmanProblemInstance><graph><vertex><edge cost="x">0</edge></vertex><vertex/></graph></travellingSalesmanProblemInstance>`,
	}
	for name, doc := range cases {
		_, _, err := graphio.LoadTSPLIB(strings.NewReader(doc))
		assert.ErrorIs(t, err, graphio.ErrFormat, name)
	}

	_, err := graphio.Load("graph.csv")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}
