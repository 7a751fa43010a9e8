// Package main provides the CLI entrypoint for fixturegen.
//
// fixturegen is a random fixture generator for Go types that:
//   - Scans Go packages (go/packages + go/types) for types it can build
//   - Writes catalogs of the discovered types and constructors
//   - Prints generated sample values
package main

import "fixturegen/internal/cli"

func main() {
	cli.Execute()
}
