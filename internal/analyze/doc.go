// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an in-memory model
// of the named types of a package and the exported fields of its structs, which
// the pattern generator validates its config against and generates from.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/array/map/external)
//   - FieldInfo: describes field name, type, tags, and embedding
package analyze
