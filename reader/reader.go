package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bimatch/bipartite"
)

// Sentinel errors for graph decoding.
var (
	// ErrUnknownFormat is returned for format names other than matrix, edges, yaml.
	ErrUnknownFormat = errors.New("reader: unknown format")

	// ErrBadHeader is returned when the "n m" header is missing or invalid.
	ErrBadHeader = errors.New("reader: bad header")

	// ErrRowCount is returned when a matrix has fewer or more rows than declared.
	ErrRowCount = errors.New("reader: wrong number of rows")

	// ErrBadRow is returned for a matrix row of the wrong width or with non 0/1 cells.
	ErrBadRow = errors.New("reader: bad matrix row")

	// ErrBadEdge is returned for a malformed or out-of-range edge.
	ErrBadEdge = errors.New("reader: bad edge")
)

// Format names an input encoding.
type Format string

// Supported formats; see the package documentation for their layout.
const (
	FormatMatrix Format = "matrix"
	FormatEdges  Format = "edges"
	FormatYAML   Format = "yaml"
)

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatMatrix, FormatEdges, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Read decodes r according to format.
func Read(format Format, r io.Reader) (*bipartite.Graph, error) {
	switch format {
	case FormatMatrix:
		return ReadMatrix(r)
	case FormatEdges:
		return ReadEdgeList(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// lineScanner yields trimmed lines with their 1-based numbers.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
	text string
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	return &lineScanner{sc: sc}
}

// next advances to the next line that is not blank and, if skipComments is
// set, does not start with '#'.
func (s *lineScanner) next(skipComments bool) bool {
	for s.sc.Scan() {
		s.line++
		s.text = strings.TrimSpace(s.sc.Text())
		if s.text == "" || (skipComments && strings.HasPrefix(s.text, "#")) {
			continue
		}
		return true
	}

	return false
}

// err returns the scanner failure, if any, tagged with the line it stopped on.
func (s *lineScanner) err() error {
	if err := s.sc.Err(); err != nil {
		return fmt.Errorf("reader: line %d: %w", s.line+1, err)
	}

	return nil
}

// readHeader parses the "n m" line shared by the matrix and edge formats.
func readHeader(s *lineScanner, skipComments bool) (int, int, error) {
	if !s.next(skipComments) {
		if err := s.err(); err != nil {
			return 0, 0, err
		}
		return 0, 0, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	n, m, err := parsePair(s.text)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: line %d: %v", ErrBadHeader, s.line, err)
	}
	if err = bipartite.CheckCounts(n, m); err != nil {
		return 0, 0, fmt.Errorf("%w: line %d: %w", ErrBadHeader, s.line, err)
	}

	return n, m, nil
}

// parsePair parses exactly two whitespace-separated integers.
func parsePair(text string) (int, int, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

// ReadMatrix decodes the matrix format. A header with a zero side yields an
// empty graph and the body is not read. The graph is only allocated once all
// declared rows have been read and validated.
func ReadMatrix(r io.Reader) (*bipartite.Graph, error) {
	s := newLineScanner(r)
	n, m, err := readHeader(s, false)
	if err != nil {
		return nil, err
	}
	if n == 0 || m == 0 {
		return bipartite.NewGraph(n, m)
	}

	var (
		errs  error
		edges [][2]int
	)
	row := 0
	for row < n && s.next(false) {
		row++
		fields := strings.Fields(s.text)
		if len(fields) != m {
			errs = multierr.Append(errs, fmt.Errorf("%w: line %d: %d cells, want %d", ErrBadRow, s.line, len(fields), m))
			continue
		}
		for j, cell := range fields {
			switch cell {
			case "0":
			case "1":
				edges = append(edges, [2]int{row, j + 1})
			default:
				errs = multierr.Append(errs, fmt.Errorf("%w: line %d column %d: %q is not 0 or 1", ErrBadRow, s.line, j+1, cell))
			}
		}
	}
	if err = s.err(); err != nil {
		return nil, multierr.Append(errs, err)
	}
	if row < n {
		errs = multierr.Append(errs, fmt.Errorf("%w: got %d, want %d", ErrRowCount, row, n))
	} else if s.next(false) {
		errs = multierr.Append(errs, fmt.Errorf("%w: unexpected data on line %d", ErrRowCount, s.line))
	}
	if errs != nil {
		return nil, errs
	}

	g, err := bipartite.NewGraph(n, m)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddPair(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ReadEdgeList decodes the edge-list format.
func ReadEdgeList(r io.Reader) (*bipartite.Graph, error) {
	s := newLineScanner(r)
	n, m, err := readHeader(s, true)
	if err != nil {
		return nil, err
	}
	g, err := bipartite.NewGraph(n, m)
	if err != nil {
		return nil, err
	}

	var errs error
	for s.next(true) {
		i, j, perr := parsePair(s.text)
		if perr != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: line %d: %v", ErrBadEdge, s.line, perr))
			continue
		}
		if aerr := g.AddPair(i, j); aerr != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: line %d: %w", ErrBadEdge, s.line, aerr))
		}
	}
	if err = s.err(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		return nil, errs
	}

	return g, nil
}

// document is the YAML shape of a graph.
type document struct {
	Left  int     `yaml:"left"`
	Right int     `yaml:"right"`
	Edges [][]int `yaml:"edges"`
}

// ReadYAML decodes the YAML format. Unknown keys are rejected.
func ReadYAML(r io.Reader) (*bipartite.Graph, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadHeader)
		}
		return nil, fmt.Errorf("reader: yaml: %w", err)
	}
	if err := bipartite.CheckCounts(doc.Left, doc.Right); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	g, err := bipartite.NewGraph(doc.Left, doc.Right)
	if err != nil {
		return nil, err
	}

	var errs error
	for k, e := range doc.Edges {
		if len(e) != 2 {
			errs = multierr.Append(errs, fmt.Errorf("%w: edge %d has %d endpoints", ErrBadEdge, k, len(e)))
			continue
		}
		if aerr := g.AddPair(e[0], e[1]); aerr != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: edge %d: %w", ErrBadEdge, k, aerr))
		}
	}
	if errs != nil {
		return nil, errs
	}

	return g, nil
}
