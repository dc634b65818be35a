package ingest_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/visibility/core"
	"github.com/katalvlaran/visibility/ingest"
)

func TestRead_SkipsHeaderAndExtraFields(t *testing.T) {
	in := "source,target,label\n1,2,a\n 2 , 3 ,b\n\n3,3\n"
	edges, err := ingest.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge[int64]{
		core.NewEdge[int64](1, 2),
		core.NewEdge[int64](2, 3),
		core.NewEdge[int64](3, 3),
	}, edges)
}

func TestRead_Empty(t *testing.T) {
	edges, err := ingest.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, edges)

	edges, err = ingest.Read(strings.NewReader("source,target\n"))
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestRead_NoHeaderAndComma(t *testing.T) {
	rd := ingest.NewReader(ingest.WithHeader(false), ingest.WithComma(';'))
	edges, err := rd.Read(strings.NewReader("1;2\n2;1\n"))
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}

func TestRead_ParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  error
		line  int
		field int
	}{
		{"NonNumericTarget", "s,t\n1,x\n", ingest.ErrBadNodeID, 2, 1},
		{"NonNumericSource", "s,t\n1,2\n1.5,2\n", ingest.ErrBadNodeID, 3, 0},
		{"MissingField", "s,t\n1,2\n7\n", ingest.ErrMissingField, 3, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ingest.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)

			var pe *ingest.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.field, pe.Field)
		})
	}
}

func TestRead_MalformedQuote(t *testing.T) {
	_, err := ingest.Read(strings.NewReader("s,t\n\"1,2\n"))
	var pe *ingest.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, -1, pe.Field)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n2,3\n"), 0o600))

	edges, err := ingest.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, edges, 2)

	_, err = ingest.ReadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "graph.csv", ingest.ResolvePath("graph", ""))
	assert.Equal(t, "graph.csv", ingest.ResolvePath("graph.csv", ""))
	assert.Equal(t, "graph.tsv", ingest.ResolvePath("graph", "tsv"))
	assert.Equal(t, "data/graph.txt.csv", ingest.ResolvePath("data/graph.txt", ".csv"))
	assert.Equal(t, "graph.v2.csv", ingest.ResolvePath("graph.v2", ""))
	assert.Equal(t, "GRAPH.CSV", ingest.ResolvePath("GRAPH.CSV", ""))
	assert.Equal(t, "graph.csv.tsv", ingest.ResolvePath("graph.csv", "tsv"))
	assert.Equal(t, "v2.csv", ingest.ResolvePath("v2", ".csv"))
}
