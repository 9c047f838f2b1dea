// Package graph provides the undirected graph consumed by the scheduling
// core: vertex/edge storage as adjacency lists plus a dense per-vertex color
// assignment.
//
// The scheduler itself only reads the vertex count and the color of each
// vertex; adjacency is used by the surrounding engine (vertex programs read
// neighbor data) and by the coloring helpers. Colors are computed up front
// (GreedyColor) or supplied by the caller; the scheduler assumes, and never
// verifies, that the coloring is proper. ValidColoring exists so that
// callers can check that contract at startup.
package graph
