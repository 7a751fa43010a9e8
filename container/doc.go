// Package container provides the collection and map kinds the generator can
// materialize, and a factory producing empty instances of a declared kind.
//
// Kinds and their concrete semantics:
//   - KindList: growable ordered sequence (*List[T], slice backed)
//   - KindSet: hash-based set (*Set[T], map backed)
//   - KindQueue: insertion-ordered linked sequence (*Queue[T]; raw *list.List)
//   - KindHashMap: hash-based map (builtin map[K]V)
//   - KindSortedMap: key-ordered map (*SortedMap[K, V], B-tree backed)
//
// Every generic container carries its type arguments at runtime, which the
// generator recovers through TypeArgs to populate containers declared as
// struct fields.
package container
