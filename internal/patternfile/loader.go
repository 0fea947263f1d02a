package patternfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"assertr/internal/analyze"
)

const filePerm = 0o644

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in values that do not depend on the loaded package.
func applyDefaults(f *File) {
	for i := range f.Types {
		t := &f.Types[i]
		if t.Pattern == "" {
			t.Pattern = t.Name + PatternSuffix
		}
	}
}

// Complete fills in the defaults that depend on the loaded package: the package
// name and the output path, which becomes absolute inside the package directory.
func (f *File) Complete(pkg *analyze.PackageInfo) {
	if f.PackageName == "" {
		f.PackageName = pkg.Name
	}

	if f.Output == "" {
		f.Output = strings.ToLower(pkg.Name) + "_pattern.go"
	}

	if !filepath.IsAbs(f.Output) && pkg.Dir != "" {
		f.Output = filepath.Join(pkg.Dir, f.Output)
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// Skeleton builds a config listing every struct of the package except existing
// pattern types. Fields holding another listed struct (directly, by pointer or in
// a slice) are matched with that struct's pattern.
func Skeleton(graph *analyze.TypeGraph, pkgPath string) *File {
	f := &File{Package: pkgPath}

	listed := map[string]bool{}
	for _, name := range graph.TypeNames(pkgPath, true) {
		if strings.HasSuffix(name, PatternSuffix) {
			continue
		}

		listed[name] = true
		f.Types = append(f.Types, TypeConfig{Name: name})
	}

	for i := range f.Types {
		t := &f.Types[i]
		info := graph.GetType(analyze.TypeID{PkgPath: pkgPath, Name: t.Name})

		for _, field := range info.Fields {
			elem := nestedElem(field.Type)
			if elem.ID.PkgPath != pkgPath || !listed[elem.ID.Name] {
				continue
			}

			if t.Fields == nil {
				t.Fields = map[string]FieldConfig{}
			}

			t.Fields[field.Name] = FieldConfig{Pattern: elem.ID.Name}
		}
	}

	applyDefaults(f)

	return f
}
