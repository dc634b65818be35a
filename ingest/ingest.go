// Package ingest reads edge lists from delimited text.
//
// The expected layout is a header record followed by one edge per record,
// with the source identifier in the first field and the target in the
// second. Extra fields are ignored, surrounding blanks are trimmed and
// blank lines are skipped:
//
//	source,target,label
//	1,2,a
//	2,2,loop
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/visibility/core"
)

// DefaultExtension is appended by ResolvePath to names that do not already end in it.
const DefaultExtension = ".csv"

// Sentinel errors wrapped by ParseError.
var (
	// ErrMissingField indicates a record with fewer than two fields.
	ErrMissingField = errors.New("ingest: record needs source and target fields")

	// ErrBadNodeID indicates a field that is not a base-10 integer.
	ErrBadNodeID = errors.New("ingest: node identifier is not an integer")
)

// ParseError reports a record that could not be decoded into an edge.
type ParseError struct {
	Line  int    // 1-based line in the input
	Field int    // 0-based field index, -1 when the record itself is malformed
	Value string // offending text
	Err   error  // ErrMissingField, ErrBadNodeID or a csv error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("ingest: line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("ingest: line %d field %d (%q): %v", e.Line, e.Field, e.Value, e.Err)
}

// Unwrap exposes the underlying sentinel.
func (e *ParseError) Unwrap() error { return e.Err }

// Option configures a Reader.
type Option func(*Reader)

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(rd *Reader) { rd.comma = r }
}

// WithHeader controls whether the first record is skipped (default true).
func WithHeader(skip bool) Option {
	return func(rd *Reader) { rd.header = skip }
}

// Reader decodes edge records.
type Reader struct {
	comma  rune
	header bool
}

// NewReader returns a Reader with the given options applied over the
// defaults: comma-delimited, header skipped.
func NewReader(opts ...Option) *Reader {
	rd := &Reader{comma: ',', header: true}
	for _, opt := range opts {
		opt(rd)
	}

	return rd
}

// Read decodes every edge record from r.
// An input without any record yields an empty edge list.
func (rd *Reader) Read(r io.Reader) ([]core.Edge[int64], error) {
	cr := csv.NewReader(r)
	cr.Comma = rd.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	edges := []core.Edge[int64]{}
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return edges, nil
		}
		if err != nil {
			pe := &ParseError{Field: -1, Err: err}
			var ce *csv.ParseError
			if errors.As(err, &ce) {
				pe.Line = ce.Line
			}
			return nil, pe
		}
		line, _ := cr.FieldPos(0)
		if first && rd.header {
			first = false
			continue
		}
		first = false

		edge, perr := decode(rec, line)
		if perr != nil {
			return nil, perr
		}
		edges = append(edges, edge)
	}
}

// decode turns one record into an edge.
func decode(rec []string, line int) (core.Edge[int64], *ParseError) {
	if len(rec) < 2 {
		return core.Edge[int64]{}, &ParseError{Line: line, Field: -1, Err: ErrMissingField}
	}
	var ids [2]int64
	for i := range ids {
		raw := strings.TrimSpace(rec[i])
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return core.Edge[int64]{}, &ParseError{Line: line, Field: i, Value: raw, Err: ErrBadNodeID}
		}
		ids[i] = id
	}

	return core.NewEdge(ids[0], ids[1]), nil
}

// Read decodes r with the default Reader.
func Read(r io.Reader) ([]core.Edge[int64], error) {
	return NewReader().Read(r)
}

// ReadFile opens path and decodes it with a Reader built from opts.
func ReadFile(path string, opts ...Option) ([]core.Edge[int64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	edges, err := NewReader(opts...).Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return edges, nil
}

// ResolvePath appends ext to name unless name already ends in ext, compared
// case-insensitively. Any other suffix ("graph.v2", "edges.txt") is part of
// the base name and still gets ext. An empty ext means DefaultExtension.
func ResolvePath(name, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if len(name) >= len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
		return name
	}

	return name + ext
}
