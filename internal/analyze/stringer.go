package analyze

import (
	"strings"
)

// TypePath builds a readable path to a field, used to locate diagnostics.
//
//   - "Order" for a type
//   - "Order.Customer" for a field
//   - "Order.Customer.Address" for a field of a nested pattern
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{parts: []string{root}}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{parts: append(append([]string{}, p.parts...), name)}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeString returns a short human-readable form of t for messages: local named
// types by name, external ones qualified by their import path.
func TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindStruct, TypeKindAlias:
		if t.IsNamed() {
			return t.ID.Name
		}

		return t.GoType.String()

	case TypeKindPointer:
		return "*" + TypeString(t.ElemType)

	case TypeKindSlice:
		return "[]" + TypeString(t.ElemType)

	case TypeKindMap:
		return "map[" + TypeString(t.KeyType) + "]" + TypeString(t.ElemType)

	case TypeKindExternal:
		return t.ID.String()

	default:
		return t.GoType.String()
	}
}
