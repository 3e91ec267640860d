// Package errors provides structured, actionable error messages for termkit.
//
// Every error carries a stable code that maps to a short message, a longer
// explanation and a documentation link. Commands attach details and a
// suggestion before returning, and the CLI prints the result with Format.
//
// # Error Categories
//
//   - config: termkit.json is missing or invalid
//   - registry: the component source could not answer (unknown component,
//     unreachable registry, failed fetch, malformed descriptor)
//   - ledger: the installation ledger could not be read
//   - sync: a synchronization precondition was not met
//   - storage: the project file store failed a read or write
//   - cli: invalid command-line usage
//
// # Usage
//
//	err := errors.New("E110").
//	    WithDetail("Component 'buton' not found in registry").
//	    WithSuggestion("Run 'termkit list' to see available components")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E110: Component not found
//	//
//	//   Component 'buton' not found in registry
//	//
//	//   Hint: Run 'termkit list' to see available components
//	//
//	//   Learn more: https://termkit.dev/docs/errors/E110
//
// Callers inspect errors by code rather than by type:
//
//	if errors.HasCode(err, "E110") {
//	    // unknown component
//	}
package errors
