// Package config loads the YAML configuration of the fixturegen command.
//
// Example:
//
//	max_depth: 4
//	seed: 42
//	length:
//	  min: 1
//	  max: 5
//	string_length: 12
//	packages:
//	  - fixturegen/store
//	  - fixturegen/warehouse
//	catalog:
//	  package: catalog
//	  output: ./internal/catalog
//
// Omitted keys take their defaults; command line flags override file values.
package config
