// Package cli implements the fixturegen command line:
//
//	fixturegen scan [patterns...]     list scanned types and their findings
//	fixturegen catalog [patterns...]  write a catalog of generatable types
//	fixturegen sample [types...]      dump generated values of the sample domains
package cli
