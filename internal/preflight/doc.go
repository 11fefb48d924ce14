// Package preflight provides readiness checks for the compiled essence
// registry and the reference catalog.
//
// The CLI "mxfkit check" command runs RunAll and prints one status line per
// result. Registry checks always run; catalog checks run only when the
// catalog database exists.
package preflight
