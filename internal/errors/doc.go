// Package errors provides structured, actionable error messages for Velum.
//
// Each error carries a unique code (e.g., "E101") that maps to a short
// message, a detailed explanation, and a documentation URL. Errors support
// errors.Is/As via Unwrap.
//
// # Error Categories
//
//   - render: renderer misuse (invalid configuration, consumed context)
//   - config: velum.json problems
//   - export: static export and upload failures
//   - serve: preview server errors
//   - cli: command-line errors
//
// # Usage
//
//	err := errors.New("E102").
//	    WithSuggestion("Allocate a new Context with render.NewContext for each render call")
//
//	fmt.Println(err.Format())
package errors
