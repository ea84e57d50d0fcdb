// Package bimatch computes maximum-cardinality matchings in bipartite graphs
// with the Hopcroft–Karp algorithm: given left vertices V, right vertices U
// and edges only between them, find the largest set of edges with no shared
// endpoint. The classic use is assignment: employees to jobs, one-to-one.
//
// Packages:
//
//	bipartite/  — the Graph (unified 0=Nil / left / right index space) and
//	              constructors: NewGraph, Complete, Random, FromMatrix
//	matching/   — the Hopcroft–Karp Engine, ComputeMaximumMatching, Verify
//	reader/     — matrix, edge-list and YAML decoders
//	config/     — command configuration (defaults, YAML, validation, zap)
//	metrics/    — Prometheus observer for matching runs
//	cmd/hopcroftkarp — command-line front end
//
// Quick ASCII example:
//
//	L1 ──── R1      edges L1–R1, L1–R2, L2–R1.
//	   ╲   ╱        Greedy L1–R1 stops at size 1; the maximum
//	    ╲ ╱         matching {L1–R2, L2–R1} has size 2.
//	    ╱ ╲
//	L2 ╱   ╲ R2
//
//	go get github.com/katalvlaran/bimatch
package bimatch
