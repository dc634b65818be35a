package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/visibility/report"
)

var scores = map[int64]float64{2: 1.5, 1: 1.5, 10: 6.125}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, scores, report.FormatTable))
	assert.Equal(t, "NODE  AVV\n1     1.5\n2     1.5\n10    6.125\n", buf.String())
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, scores, report.FormatCSV))
	assert.Equal(t, "node,avv\n1,1.5\n2,1.5\n10,6.125\n", buf.String())
}

func TestWrite_JSONAndYAMLRoundTrip(t *testing.T) {
	want := report.Rows(scores)

	var jbuf bytes.Buffer
	require.NoError(t, report.Write(&jbuf, scores, report.FormatJSON))
	var fromJSON []report.Row[int64]
	require.NoError(t, json.Unmarshal(jbuf.Bytes(), &fromJSON))
	assert.Equal(t, want, fromJSON)

	var ybuf bytes.Buffer
	require.NoError(t, report.Write(&ybuf, scores, report.FormatYAML))
	var fromYAML []report.Row[int64]
	require.NoError(t, yaml.Unmarshal(ybuf.Bytes(), &fromYAML))
	assert.Equal(t, want, fromYAML)
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, map[int64]float64{}, report.FormatJSON))
	assert.JSONEq(t, "[]", buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, report.FormatYAML, f)

	_, err = report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)

	var buf bytes.Buffer
	assert.ErrorIs(t, report.Write(&buf, scores, report.Format("xml")), report.ErrUnknownFormat)
}
