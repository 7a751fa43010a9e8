// Package fixture generates random, recursively populated values of arbitrary
// types for use as test fixture data.
//
// A Generator dispatches every requested type to one strategy:
//   - leaf: a generator registered by a provider.Source
//   - enum: a uniformly chosen declared value (EnumValues() []T or WithEnum)
//   - array: slices of 1..9 elements by default, fixed arrays filled entirely
//   - container: an empty instance when requested directly, populated when
//     declared as a struct field
//   - composite: a registered constructor (or the zero value for structs)
//     followed by population of exported fields
//
// Recursion is bounded by maxDepth. Past it the zero value of the requested
// type is used instead, so self-referential types terminate with nil pointers.
// Pointers do not count as a level: *T is generated as T and then addressed.
package fixture
