package gen

import (
	"text/template"
)

// templateData holds all data needed for the pattern template.
type templateData struct {
	PackageName string
	Imports     []importSpec
	// Eq is the local name of the eq package.
	Eq       string
	Patterns []patternData
}

// patternData describes one generated pattern type.
type patternData struct {
	Name     string
	TypeName string
	Fields   []fieldData
}

// fieldData describes one slot of a pattern.
type fieldData struct {
	Name     string
	Quoted   string
	SlotType string
	// Compare is the custom comparator, empty for eq.Compare.
	Compare string
}

var patternTemplate = template.Must(template.New("pattern").Parse(`// Code generated by assertr-gen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{$eq := .Eq}}
{{range .Patterns}}
// {{.Name}} matches {{.TypeName}} values. Slots left at their zero value match anything.
type {{.Name}} struct {
{{range .Fields}}	{{.Name}} {{$eq}}.Eq[{{.SlotType}}]
{{end}}}

// Matches reports whether actual matches every Exact slot of p. Each mismatching
// field is recorded in ctx.
func (p {{.Name}}) Matches(actual {{.TypeName}}, ctx *{{$eq}}.Context) bool {
	ok := true
{{range .Fields}}{{if .Compare}}	ok = {{$eq}}.FieldBy(ctx, {{.Quoted}}, actual.{{.Name}}, p.{{.Name}}, {{.Compare}}) && ok
{{else}}	ok = {{$eq}}.Field(ctx, {{.Quoted}}, actual.{{.Name}}, p.{{.Name}}) && ok
{{end}}{{end}}
	return ok
}

// MatchAny matches {{.TypeName}} and *{{.TypeName}} values.
func (p {{.Name}}) MatchAny(actual any, ctx *{{$eq}}.Context) bool {
	switch v := actual.(type) {
	case {{.TypeName}}:
		return p.Matches(v, ctx)
	case *{{.TypeName}}:
		return v != nil && p.Matches(*v, ctx)
	default:
		return false
	}
}
{{end}}`))
