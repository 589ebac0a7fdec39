// Package model defines the core data structures shared across ipfreq.
//
// This package contains the following main types:
//   - FrequencyTable: Occurrence counts keyed by normalized address
//   - Entry: A single (address, count) report row, optionally resolved
//
// Design decision: We separate models into their own package to avoid
// circular dependencies. Both the scanner and report packages need these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
