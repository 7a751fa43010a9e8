// Package diagnostic provides structured findings about scanned types:
// fields the generator will leave at their zero value, types it cannot
// build, and containers whose element types cannot be recovered.
//
// Key capabilities:
//   - Unsupported field errors
//   - Ineligible type and generic type infos
//   - Unresolvable container warnings
package diagnostic
