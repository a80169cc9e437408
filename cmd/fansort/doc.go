// Package main hosts the fansort CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into classification
// and rename runs over files and directory trees. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
package main
