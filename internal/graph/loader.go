package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadAdjList loads a graph from an adjacency-list text file.
// See ParseAdjList for the format.
func ReadAdjList(path string) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph file: %w", err)
	}
	defer file.Close()

	g, err := ParseAdjList(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ParseAdjList parses adjacency-list text: one line per source vertex,
// "u v1 v2 ...", listing the neighbors of u. Blank lines and lines starting
// with '#' are ignored. Vertex ids are non-negative integers; the vertex
// count is the highest id seen plus one. Each edge only needs to appear in
// one direction; the parser symmetrizes and deduplicates.
func ParseAdjList(r io.Reader) (*Graph, error) {
	type edge struct{ u, v int }
	var edges []edge
	maxVertex := -1

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tok := strings.Fields(line)
		u, err := strconv.Atoi(tok[0])
		if err != nil || u < 0 {
			return nil, fmt.Errorf("line %d: invalid vertex id %q", lineNo, tok[0])
		}
		if u > maxVertex {
			maxVertex = u
		}
		for _, s := range tok[1:] {
			v, err := strconv.Atoi(s)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("line %d: invalid vertex id %q", lineNo, s)
			}
			if v == u {
				return nil, fmt.Errorf("line %d: self-loop on vertex %d", lineNo, u)
			}
			if v > maxVertex {
				maxVertex = v
			}
			edges = append(edges, edge{u, v})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read graph: %w", err)
	}

	g := New(maxVertex + 1)
	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		key := [2]int{min(e.u, e.v), max(e.u, e.v)}
		if seen[key] {
			continue
		}
		seen[key] = true
		if err := g.AddEdge(e.u, e.v); err != nil {
			return nil, err
		}
	}
	return g, nil
}
