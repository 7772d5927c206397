// Package errors provides structured error types for recipegen.
//
// Every failure the generator can surface falls into a small taxonomy:
// malformed compiled-in tables (INVALID_DATA), bad user input such as an
// unknown category in --count (INVALID_REQUEST), output failures (IO), and
// unexpected internal conditions (INTERNAL). None of them are retried.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeIO,
//	    "failed to write corpus",
//	    cause,
//	    map[string]any{
//	        "path": "recipes_1000.json",
//	    },
//	)
package errors
