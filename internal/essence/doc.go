// Package essence defines the closed set of essence kinds that mxfkit knows
// about and answers the two questions every container reader and writer asks
// of them: what should this kind be called, and is it picture, sound or data.
//
// This package has no mxfkit-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Kind: the enumeration, generic kinds first then concrete codec profiles
//   - ContractViolation: panic value raised when an invalid Kind is looked up
//
// Primary entry points:
//   - Kind.Label / Label: display string for a kind
//   - Kind.Generic / Generic: Unknown, Picture, Sound or Data
//   - Parse: resolve a name, label or ordinal typed by a user
//   - Check: self-check of the compiled table, also run from init
//
// The table is immutable and every accessor is safe for concurrent use.
package essence
