// Package gen provides deterministic Go code generation for type catalogs.
//
// A catalog is a Go file listing the generatable types of a set of scanned
// packages as reflect.Type values, together with their discovered
// constructors. Go cannot look a type up by name at runtime, so the catalog
// is how discovered types reach a fixture.Generator.
//
// Generation approach uses text/template + go/format for readable,
// deterministic output.
package gen
