package patternfile

import (
	"fmt"
	"go/token"
	"sort"
	"strings"

	"assertr/internal/analyze"
	"assertr/internal/diagnostic"
	"assertr/internal/suggest"
)

// Shape is how a field holds a nested pattern's type.
type Shape int

const (
	ShapeValue   Shape = iota // T or *T
	ShapeSlice                // []T or []*T
	ShapeInvalid              // anything else
)

// nestedElem strips one pointer, one slice level and one more pointer from t.
func nestedElem(t *analyze.TypeInfo) *analyze.TypeInfo {
	t = t.Deref()
	if t.Kind == analyze.TypeKindSlice && t.ElemType != nil {
		t = t.ElemType.Deref()
	}

	return t
}

// NestedShape reports how a field of type t holds the struct id.
func NestedShape(t *analyze.TypeInfo, id analyze.TypeID) Shape {
	if t.Deref().ID == id && t.Deref().Kind == analyze.TypeKindStruct {
		return ShapeValue
	}

	if elem := nestedElem(t); t.Deref().Kind == analyze.TypeKindSlice && elem.ID == id && elem.Kind == analyze.TypeKindStruct {
		return ShapeSlice
	}

	return ShapeInvalid
}

// Validate checks a config against the loaded type graph. It never stops at the
// first problem; every finding is returned.
func Validate(f *File, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if f.Package == "" {
		res.AddError(diagnostic.CodeNoPackage, "no package configured", "", "")
		return res
	}

	if _, ok := graph.Packages[f.Package]; !ok {
		res.AddError(diagnostic.CodeNoPackage, fmt.Sprintf("package %q was not loaded", f.Package), "", "")
		return res
	}

	if len(f.Types) == 0 {
		res.AddError(diagnostic.CodeNoTypes, "no types configured", "", "")
		return res
	}

	if f.PackageName != "" && !token.IsIdentifier(f.PackageName) {
		res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("package_name %q is not an identifier", f.PackageName), "", "")
	}

	seenTypes := map[string]bool{}
	seenPatterns := map[string]string{}

	for i := range f.Types {
		t := &f.Types[i]

		if seenTypes[t.Name] {
			res.AddError(diagnostic.CodeDuplicateType, fmt.Sprintf("type %s is configured twice", t.Name), t.Name, "")
			continue
		}

		seenTypes[t.Name] = true

		pattern := t.PatternName()
		if !token.IsIdentifier(pattern) || !token.IsExported(pattern) {
			res.AddError(diagnostic.CodeInvalidName,
				fmt.Sprintf("pattern name %q is not an exported identifier", pattern), t.Name, "")
		}

		if other, ok := seenPatterns[pattern]; ok {
			res.AddError(diagnostic.CodeDuplicateName,
				fmt.Sprintf("pattern name %s is also used by %s", pattern, other), t.Name, "")
		}

		seenPatterns[pattern] = t.Name

		validateType(res, f, t, graph)
	}

	for _, t := range f.Types {
		if seenTypes[t.PatternName()] {
			res.AddError(diagnostic.CodeDuplicateName,
				fmt.Sprintf("pattern name %s collides with a configured type", t.PatternName()), t.Name, "")
		}
	}

	return res
}

func validateType(res *diagnostic.Diagnostics, f *File, t *TypeConfig, graph *analyze.TypeGraph) {
	info := graph.GetType(analyze.TypeID{PkgPath: f.Package, Name: t.Name})
	if info == nil {
		res.AddError(diagnostic.CodeUnknownType,
			fmt.Sprintf("no type %s in package %s", t.Name, f.Package), t.Name, "",
			suggest.Closest(t.Name, graph.TypeNames(f.Package, true))...)

		return
	}

	if info.Kind != analyze.TypeKindStruct {
		res.AddError(diagnostic.CodeNotStruct,
			fmt.Sprintf("%s is a %s type, not a struct", t.Name, info.Kind), t.Name, "")

		return
	}

	path := analyze.NewTypePath(t.Name)

	names := make([]string, 0, len(t.Fields))
	for name := range t.Fields {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		cfg := t.Fields[name]
		fieldPath := path.Field(name).String()

		field, ok := info.Field(name)
		if !ok {
			res.AddError(diagnostic.CodeUnknownField,
				fmt.Sprintf("%s has no exported field %s", t.Name, name), t.Name, fieldPath,
				suggest.Closest(name, info.FieldNames())...)

			continue
		}

		validateField(res, f, cfg, field, t.Name, fieldPath)
	}

	slots := 0
	for _, field := range info.Fields {
		switch {
		case field.Skipped():
			res.AddInfo(diagnostic.CodeSkippedField, "skipped by struct tag", t.Name, path.Field(field.Name).String())
		case t.Field(field.Name).Skip:
			res.AddInfo(diagnostic.CodeSkippedField, "skipped by config", t.Name, path.Field(field.Name).String())
		default:
			slots++
		}
	}

	if slots == 0 {
		res.AddWarning(diagnostic.CodeEmptyPattern,
			fmt.Sprintf("%s has no fields to match; every value matches it", t.PatternName()), t.Name, "")
	}
}

func validateField(
	res *diagnostic.Diagnostics,
	f *File,
	cfg FieldConfig,
	field *analyze.FieldInfo,
	typeName, fieldPath string,
) {
	if cfg.Skip && (cfg.Pattern != "" || cfg.Compare != "") {
		res.AddWarning(diagnostic.CodeSkippedField, "field is skipped; pattern and compare are ignored", typeName, fieldPath)
		return
	}

	if cfg.Pattern != "" && cfg.Compare != "" {
		res.AddError(diagnostic.CodeConflict, "pattern and compare cannot be combined", typeName, fieldPath)
		return
	}

	if cfg.Compare != "" && !isQualifiedIdent(cfg.Compare) {
		res.AddError(diagnostic.CodeInvalidName,
			fmt.Sprintf("compare %q is not a function name", cfg.Compare), typeName, fieldPath)
	}

	if cfg.Pattern == "" {
		return
	}

	if _, ok := f.Type(cfg.Pattern); !ok {
		res.AddError(diagnostic.CodeUnknownPattern,
			fmt.Sprintf("pattern refers to %s, which is not a configured type", cfg.Pattern), typeName, fieldPath,
			suggest.Closest(cfg.Pattern, f.TypeNames())...)

		return
	}

	id := analyze.TypeID{PkgPath: f.Package, Name: cfg.Pattern}
	if NestedShape(field.Type, id) == ShapeInvalid {
		res.AddError(diagnostic.CodePatternType,
			fmt.Sprintf("field of type %s cannot be matched by the pattern of %s", analyze.TypeString(field.Type), cfg.Pattern),
			typeName, fieldPath)
	}
}

// isQualifiedIdent accepts "Name" and "pkg.Name".
func isQualifiedIdent(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return false
	}

	for _, p := range parts {
		if !token.IsIdentifier(p) {
			return false
		}
	}

	return true
}
