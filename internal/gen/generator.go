package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"path/filepath"
	"strconv"

	"assertr/internal/analyze"
	"assertr/internal/patternfile"
)

// DefaultEqImportPath is the import path of the package providing eq.Eq.
const DefaultEqImportPath = "assertr/eq"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// EqImportPath is the import path of the eq package.
	EqImportPath string
	// DebugDir receives the unformatted source when formatting fails. Empty disables it.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{EqImportPath: DefaultEqImportPath}
}

// Generator generates pattern types from a validated config.
type Generator struct {
	config GeneratorConfig
	graph  *analyze.TypeGraph
}

// NewGenerator creates a new Generator over a loaded type graph.
func NewGenerator(config GeneratorConfig, graph *analyze.TypeGraph) *Generator {
	if config.EqImportPath == "" {
		config.EqImportPath = DefaultEqImportPath
	}

	return &Generator{config: config, graph: graph}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "shop_pattern.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders every configured pattern into one file. The config must have
// passed patternfile.Validate and been completed with File.Complete.
func (g *Generator) Generate(f *patternfile.File) (*GeneratedFile, error) {
	pkg, ok := g.graph.Packages[f.Package]
	if !ok {
		return nil, fmt.Errorf("package %s was not loaded", f.Package)
	}

	if f.PackageName == "" {
		return nil, errors.New("package name is not set")
	}

	// A file with another package clause lives in a different package, e.g. an
	// external test package, and must qualify the loaded package's identifiers.
	self := f.Package
	if f.PackageName != pkg.Name {
		self = ""
	}

	imports := newImportSet(self)
	eqAlias := imports.add(g.config.EqImportPath, "eq")

	data := &templateData{
		PackageName: f.PackageName,
		Eq:          eqAlias,
	}

	for i := range f.Types {
		p, err := g.buildPattern(f, &f.Types[i], pkg, imports)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", f.Types[i].PatternName(), err)
		}

		data.Patterns = append(data.Patterns, *p)
	}

	data.Imports = imports.specs()

	filename := filepath.Base(f.Output)
	if f.Output == "" {
		filename = pkg.Name + "_pattern.go"
	}

	var buf bytes.Buffer
	if err := patternTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, filename, buf.Bytes())
		}

		return &GeneratedFile{Filename: filename, Content: buf.Bytes()}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{Filename: filename, Content: formatted}, nil
}

func (g *Generator) buildPattern(
	f *patternfile.File,
	t *patternfile.TypeConfig,
	pkg *analyze.PackageInfo,
	imports *importSet,
) (*patternData, error) {
	id := analyze.TypeID{PkgPath: f.Package, Name: t.Name}

	info := g.graph.GetType(id)
	if info == nil || info.Kind != analyze.TypeKindStruct {
		return nil, fmt.Errorf("%s is not a struct of the loaded package", id)
	}

	p := &patternData{
		Name:     t.PatternName(),
		TypeName: imports.namedExpr(id, pkg.Name),
	}

	for _, field := range info.Fields {
		cfg := t.Field(field.Name)
		if cfg.Skip || field.Skipped() {
			continue
		}

		fd, err := g.buildField(f, &field, cfg, imports)
		if err != nil {
			return nil, err
		}

		p.Fields = append(p.Fields, fd)
	}

	return p, nil
}

func (g *Generator) buildField(
	f *patternfile.File,
	field *analyze.FieldInfo,
	cfg patternfile.FieldConfig,
	imports *importSet,
) (fieldData, error) {
	fd := fieldData{
		Name:     field.Name,
		Quoted:   strconv.Quote(field.Name),
		SlotType: imports.typeExpr(field.Type),
		Compare:  cfg.Compare,
	}

	if cfg.Pattern == "" {
		return fd, nil
	}

	nested, ok := f.Type(cfg.Pattern)
	if !ok {
		return fd, fmt.Errorf("field %s: %s is not a configured type", field.Name, cfg.Pattern)
	}

	switch patternfile.NestedShape(field.Type, analyze.TypeID{PkgPath: f.Package, Name: nested.Name}) {
	case patternfile.ShapeValue:
		fd.SlotType = nested.PatternName()
	case patternfile.ShapeSlice:
		fd.SlotType = "[]" + nested.PatternName()
	default:
		return fd, fmt.Errorf("field %s of type %s cannot hold %s",
			field.Name, analyze.TypeString(field.Type), nested.PatternName())
	}

	return fd, nil
}
