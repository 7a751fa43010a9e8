// Package match ranks known qualified type names by edit distance to a
// misspelled one, for "did you mean" hints.
package match
