// Package config defines the model for a colorgrid run file along with the
// Loader interface for reading one from disk. The run file names the graph
// to load and the program to execute, plus the execution options the
// scheduler recognizes. The concrete HCL implementation lives in hcl.go.
package config
