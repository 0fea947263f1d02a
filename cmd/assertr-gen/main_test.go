package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"assertr/internal/analyze"
	"assertr/internal/patternfile"
)

var shopDir = filepath.Join("..", "..", "examples", "shop")

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-pkg", "./examples/shop", "-types", "Person, Address", "-v"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "./examples/shop", opts.pkg)
	assert.Equal(t, []string{"Person", "Address"}, opts.types)
	assert.True(t, opts.verbose)

	_, err = parseFlags([]string{"-help"}, &bytes.Buffer{})
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestRun_Config(t *testing.T) {
	out := filepath.Join(t.TempDir(), "shop_pattern.go")
	logger, logs := observedLogger()

	err := run(&options{config: filepath.Join(shopDir, "assertr-gen.yaml"), out: out}, logger)
	require.NoError(t, err)

	generated, err := os.ReadFile(out)
	require.NoError(t, err)

	committed, err := os.ReadFile(filepath.Join(shopDir, "shop_pattern.go"))
	require.NoError(t, err)

	assert.Equal(t, string(committed), string(generated))

	entries := logs.FilterMessage("patterns generated").All()
	require.Len(t, entries, 1)
	assert.Equal(t, out, entries[0].ContextMap()["file"])

	assert.Equal(t, 2, logs.FilterField(zap.String("code", "skipped_field")).Len())
}

func TestRun_Flags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "patterns_test.go")
	logger, _ := observedLogger()

	err := run(&options{
		pkg:         "assertr/examples/shop",
		types:       []string{"Address"},
		out:         out,
		packageName: "shop_test",
	}, logger)
	require.NoError(t, err)

	generated, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(generated), "func (p AddressPattern) Matches(actual shop.Address, ctx *eq.Context) bool {")
}

func TestRun_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assertr-gen.yaml")
	logger, logs := observedLogger()

	err := run(&options{pkg: "assertr/examples/shop", init: path}, logger)
	require.NoError(t, err)

	f, err := patternfile.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "assertr/examples/shop", f.Package)
	assert.Equal(t, []string{"Address", "Line", "Money", "Order", "Person"}, f.TypeNames())

	assert.Equal(t, 1, logs.FilterMessage("config written").Len())
}

func TestRun_InvalidConfig(t *testing.T) {
	logger, logs := observedLogger()

	err := run(&options{pkg: "assertr/examples/shop", types: []string{"Persn"}, out: filepath.Join(t.TempDir(), "x.go")}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[unknown_type] no type Persn in package assertr/examples/shop (did you mean Person?)")

	entries := logs.FilterField(zap.String("code", "unknown_type")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(&options{})
	require.EqualError(t, err, "either -config or -pkg is required")

	_, err = loadConfig(&options{pkg: "assertr/examples/shop"})
	require.EqualError(t, err, "-types is required without -config")

	_, err = loadConfig(&options{config: "does-not-exist.yaml"})
	require.Error(t, err)
}

func TestResolvePackage(t *testing.T) {
	shopPkg := &analyze.PackageInfo{Path: "assertr/examples/shop", Name: "shop"}
	graph := analyze.NewTypeGraph()
	graph.Packages[shopPkg.Path] = shopPkg

	cfg := &patternfile.File{Package: "./examples/shop"}
	pkg, err := resolvePackage(cfg, graph)
	require.NoError(t, err)
	assert.Same(t, shopPkg, pkg)
	assert.Equal(t, "assertr/examples/shop", cfg.Package)

	graph.Packages["assertr/examples/other"] = &analyze.PackageInfo{Path: "assertr/examples/other"}

	pkg, err = resolvePackage(&patternfile.File{Package: "assertr/examples/shop"}, graph)
	require.NoError(t, err)
	assert.Same(t, shopPkg, pkg)

	_, err = resolvePackage(&patternfile.File{Package: "./examples/..."}, graph)
	require.EqualError(t, err, `pattern "./examples/..." must match exactly one package, matched 2`)
}
