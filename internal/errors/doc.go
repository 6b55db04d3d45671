// Package errors provides structured, actionable error messages for routegen.
//
// Every error carries a code (e.g., "E201") mapping to a category, a short
// message, a longer explanation and a documentation link. Errors can wrap an
// underlying cause and point at the file that caused them:
//
//	err := errors.New("E201").
//	    WithFile("routes.json").
//	    WithSuggestion("Check that the descriptor file is valid JSON").
//	    Wrap(cause)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E201: Invalid descriptor file
//	//
//	//   routes.json
//	//
//	//   The route descriptor file could not be decoded.
//	//
//	//   Hint: Check that the descriptor file is valid JSON
//	//
//	//   Learn more: https://routegen.vango.dev/errors/E201
//
// # Error Categories
//
//   - config: routegen.json and environment problems
//   - routes: descriptor loading and validation
//   - generate: manifest directory and file writes
//   - storage: publishing to object storage
//   - cli: command usage and the dev server
package errors
