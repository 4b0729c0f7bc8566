// Package errors provides structured, actionable error messages for Pulse.
//
// Each error carries a unique code (e.g., "E100") that maps to a short
// message, a detailed explanation, and a documentation URL. Errors are
// organized into categories:
//   - runtime: execution errors (closed scopes, cancelled mounts)
//   - usage: API ordering errors (Children.Append before Render)
//   - protocol: wire protocol errors (invalid frames)
//   - config: pulse.json errors
//
// # Usage
//
//	err := errors.New("E100").
//	    WithSuggestion("Mount children.Render() before calling Append")
//
//	fmt.Println(err)
//	// [PULSE E100] Children not rendered
package errors
