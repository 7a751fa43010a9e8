// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an in-memory
// model of the exported types of a set of packages, and decides statically
// which of them the generator can build.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/map/container/...)
//     and generation eligibility
//   - FieldInfo: describes field name, type, tags, and embedding
//   - FuncID: a discovered constructor function
package analyze
