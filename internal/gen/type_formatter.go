package gen

import (
	"go/types"
	"sort"
	"strconv"

	"assertr/internal/analyze"
	"assertr/internal/common"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// importSet collects the imports of one generated file and hands out their local
// names. The package the file is generated into is never imported.
type importSet struct {
	self    string
	byPath  map[string]string
	byAlias map[string]string
}

func newImportSet(self string) *importSet {
	return &importSet{
		self:    self,
		byPath:  map[string]string{},
		byAlias: map[string]string{},
	}
}

// add imports pkgPath and returns the name to qualify its identifiers with, "" for
// the package being generated.
func (s *importSet) add(pkgPath, name string) string {
	if pkgPath == s.self {
		return ""
	}

	if alias, ok := s.byPath[pkgPath]; ok {
		return alias
	}

	if name == "" {
		name = common.PkgAlias(pkgPath)
	}

	alias := name
	for i := 2; s.byAlias[alias] != ""; i++ {
		alias = name + strconv.Itoa(i)
	}

	s.byPath[pkgPath] = alias
	s.byAlias[alias] = pkgPath

	return alias
}

// qualifier is a types.Qualifier recording every package it is asked about.
func (s *importSet) qualifier(pkg *types.Package) string {
	return s.add(pkg.Path(), pkg.Name())
}

// specs returns the imports sorted by path. The alias is only set where it
// differs from the package's default name.
func (s *importSet) specs() []importSpec {
	specs := make([]importSpec, 0, len(s.byPath))
	for path, alias := range s.byPath {
		spec := importSpec{Path: path}
		if alias != common.PkgAlias(path) {
			spec.Alias = alias
		}

		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs
}

// typeExpr renders t as Go source in the file being generated.
func (s *importSet) typeExpr(t *analyze.TypeInfo) string {
	return types.TypeString(t.GoType, s.qualifier)
}

// namedExpr renders a named type of the loaded package.
func (s *importSet) namedExpr(id analyze.TypeID, pkgName string) string {
	if q := s.add(id.PkgPath, pkgName); q != "" {
		return q + "." + id.Name
	}

	return id.Name
}
