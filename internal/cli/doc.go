// Package cli implements the relpredict command line.
//
// Commands share the persistent --format (text|json), --verbose and
// --config flags. JSON output uses the CLIResponse envelope; predictions
// are written as canonical JSON so identical inputs print identical bytes.
// Commands return an ExitError whose code main passes to os.Exit.
package cli
