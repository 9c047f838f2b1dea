// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (load run file, load and
// color the graph, build the scheduler and engine, execute), decoupled from
// any specific entrypoint like a CLI.
package app
