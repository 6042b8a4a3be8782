// Package errors provides coded, actionable errors for transitiongate.
//
// Each error carries a code (e.g., "E101") registered with a category, a
// short message and a longer explanation. Callers add a suggestion or wrap
// an underlying cause:
//
//	err := errors.New("E201").Wrap(cause).WithDetail(path)
//
// # Error Categories
//
//   - validation: bad props or children handed to a gate
//   - runtime: operations on a torn-down gate or closed loop
//   - config: configuration file problems
//   - scenario: scenario file problems
//
// # Codes
//
//	E101-E199  gate validation and runtime errors
//	E201-E299  configuration errors
//	E301-E399  scenario errors
package errors
