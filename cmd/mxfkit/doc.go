// Package main hosts the mxfkit CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the essence kind registry: listing
// and describing kinds, running the table self-checks, and publishing the
// registry into the SQLite reference catalog. It centralizes configuration
// resolution, output formatting, and logging setup so subcommands stay small.
//
// Add behaviour to the internal packages first, then expose it here.
package main
