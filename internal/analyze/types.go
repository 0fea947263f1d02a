package analyze

import (
	"go/types"
	"reflect"
	"sort"

	"assertr/internal/common"
)

// TagKey is the struct tag the generator reads. `assertr:"-"` leaves a field out of
// the generated pattern.
const TagKey = "assertr"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "assertr/examples/shop"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindArray             // array of another type
	TypeKindMap               // map of key to element type
	TypeKindAlias             // named type wrapping a non-struct type
	TypeKindExternal          // named type from a package that was not loaded (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For aliases, the underlying type
	ElemType   *TypeInfo   // For pointers, slices, arrays and maps, the element type
	KeyType    *TypeInfo   // For maps, the key type
	Fields     []FieldInfo // For structs, the exported fields
	GoType     types.Type  // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Deref returns the element type of a pointer, or t itself.
func (t *TypeInfo) Deref() *TypeInfo {
	if t.Kind == TypeKindPointer && t.ElemType != nil {
		return t.ElemType
	}

	return t
}

// Field returns the exported field with the given name.
func (t *TypeInfo) Field(name string) (*FieldInfo, bool) {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i], true
		}
	}

	return nil, false
}

// FieldNames returns the names of the exported fields in declaration order.
func (t *TypeInfo) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}

	return names
}

// FieldInfo describes an exported struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// Skipped reports whether the field is tagged `assertr:"-"`.
func (f *FieldInfo) Skipped() bool {
	return f.GetTag(TagKey) == "-"
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// TypeNames returns the sorted names of the named types of a package. With
// structsOnly, only struct types are listed.
func (g *TypeGraph) TypeNames(pkgPath string, structsOnly bool) []string {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	var names []string
	for _, id := range pkg.Types {
		if structsOnly && g.Types[id].Kind != TypeKindStruct {
			continue
		}

		names = append(names, id.Name)
	}

	sort.Strings(names)

	return names
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory of the package sources
	Types []TypeID // Named types defined in this package
}
