// Package report renders AVV score mappings for people and tools.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/visibility/core"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// ErrUnknownFormat is returned for a Format outside the supported set.
var ErrUnknownFormat = errors.New("report: unknown format")

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML, FormatCSV}
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Formats(), f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Row is one rendered score.
type Row[N core.NodeID] struct {
	Node N       `json:"node" yaml:"node"`
	AVV  float64 `json:"avv" yaml:"avv"`
}

// Rows flattens scores into rows sorted by node ascending.
func Rows[N core.NodeID](scores map[N]float64) []Row[N] {
	nodes := slices.Sorted(maps.Keys(scores))
	rows := make([]Row[N], len(nodes))
	for i, n := range nodes {
		rows[i] = Row[N]{Node: n, AVV: scores[n]}
	}

	return rows
}

// Write renders scores to w in the requested format.
func Write[N core.NodeID](w io.Writer, scores map[N]float64, f Format) error {
	rows := Rows(scores)
	switch f {
	case FormatTable, "":
		return writeTable(w, rows)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case FormatCSV:
		return writeCSV(w, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeTable[N core.NodeID](w io.Writer, rows []Row[N]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tAVV")
	for _, r := range rows {
		fmt.Fprintf(tw, "%v\t%s\n", r.Node, formatScore(r.AVV))
	}

	return tw.Flush()
}

func writeCSV[N core.NodeID](w io.Writer, rows []Row[N]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"node", "avv"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{fmt.Sprint(r.Node), formatScore(r.AVV)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
