// Package reader decodes bipartite graphs from text so the matching engine
// receives a graph whose indices are already validated.
//
// Three formats are supported:
//
//	matrix — "n m" header, then n rows of m space-separated 0/1 cells;
//	         cell (i, j) == 1 is an edge between left i and right j.
//
//	           5 5
//	           1 1 1 1 1
//	           1 0 0 1 0
//	           0 1 0 1 0
//	           0 1 0 1 1
//	           1 0 0 0 0
//
//	edges  — "n m" header, then one "i j" pair per line (1-based);
//	         blank lines and lines starting with '#' are skipped.
//
//	yaml   — a document {left: n, right: m, edges: [[i, j], ...]}.
//
// Readers fail fast on a bad header and otherwise collect every bad row or
// edge before returning, combined with go.uber.org/multierr, so a user can
// fix all mistakes in one pass. Individual causes match the package
// sentinels via errors.Is.
package reader
