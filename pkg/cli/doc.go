// Package cli implements the recipegen command-line interface.
//
// # Commands
//
// generate - Build the corpus (default when no command is given):
//
//	recipegen generate [--output FILE|-|cm://ns/name] [--format json|yaml|table]
//	    [--seed N] [--count key=n]... [--distribution FILE] [--parallel N]
//	    [--metrics-file FILE] [--push oci://registry/repo:tag]
//
// Prints a progress line as each category starts and a summary with the
// distribution when done. Progress goes to stderr when the corpus is
// written to stdout.
//
// catalog - Print the compiled-in tables with a header:
//
//	recipegen catalog [--output FILE] [--format yaml|json|table]
//
// validate - Re-check a corpus:
//
//	recipegen validate --corpus FILE|URL|cm://ns/name [--fail-on-error]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//	--version, -v  Show version information
//	--help, -h     Show command help
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, malformed tables, I/O failure)
//	2  Context canceled or timeout
package cli
