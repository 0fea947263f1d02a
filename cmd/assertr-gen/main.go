// Package main provides the CLI entrypoint for assertr-gen.
//
// assertr-gen loads a Go package and generates pattern types for its structs: one
// eq.Eq slot per exported field plus Matches and MatchAny methods, so a live value
// can be compared against a partially specified expectation.
//
// Usage:
//
//	assertr-gen -config assertr-gen.yaml
//	assertr-gen -pkg ./examples/shop -types Person,Address
//	assertr-gen -pkg ./examples/shop -init assertr-gen.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"assertr/internal/analyze"
	"assertr/internal/common"
	"assertr/internal/diagnostic"
	"assertr/internal/gen"
	"assertr/internal/patternfile"
)

// options are the parsed command line flags.
type options struct {
	config      string
	pkg         string
	types       []string
	out         string
	packageName string
	init        string
	dir         string
	verbose     bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}

	if err != nil {
		os.Exit(2)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "assertr-gen: creating logger:", err)
		os.Exit(1)
	}

	defer func() { _ = logger.Sync() }()

	if err := run(opts, logger); err != nil {
		logger.Error("generation failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("assertr-gen", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		opts  options
		types string
	)

	fs.StringVar(&opts.config, "config", "", "YAML config file")
	fs.StringVar(&opts.pkg, "pkg", "", "package to load when no config is given")
	fs.StringVar(&types, "types", "", "comma separated struct names when no config is given")
	fs.StringVar(&opts.out, "out", "", "output file, overrides the config")
	fs.StringVar(&opts.packageName, "package-name", "", "package clause of the output, overrides the config")
	fs.StringVar(&opts.init, "init", "", "write a config listing every struct of -pkg to this file and exit")
	fs.StringVar(&opts.dir, "dir", "", "directory package patterns are resolved in")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.types = common.SplitList(types)

	return &opts, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	return cfg.Build()
}

func run(opts *options, logger *zap.Logger) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	graph, err := analyze.NewAnalyzer(opts.dir).LoadPackages(cfg.Package)
	if err != nil {
		return err
	}

	pkg, err := resolvePackage(cfg, graph)
	if err != nil {
		return err
	}

	logger.Debug("package loaded",
		zap.String("package", pkg.Path),
		zap.String("dir", pkg.Dir),
		zap.Int("types", len(pkg.Types)))

	if opts.init != "" {
		skeleton := patternfile.Skeleton(graph, pkg.Path)
		if err := patternfile.WriteFile(skeleton, opts.init); err != nil {
			return err
		}

		logger.Info("config written", zap.String("file", opts.init), zap.Strings("types", skeleton.TypeNames()))

		return nil
	}

	if opts.out != "" {
		cfg.Output = opts.out
	}

	if opts.packageName != "" {
		cfg.PackageName = opts.packageName
	}

	cfg.Complete(pkg)

	diags := patternfile.Validate(cfg, graph)
	logDiagnostics(logger, diags)

	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	outDir := filepath.Dir(cfg.Output)

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.DebugDir = outDir

	file, err := gen.NewGenerator(genCfg, graph).Generate(cfg)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{*file}, outDir); err != nil {
		return err
	}

	logger.Info("patterns generated",
		zap.String("file", cfg.Output),
		zap.Strings("patterns", patternNames(cfg)))

	return nil
}

// loadConfig reads the config file, or builds a config from -pkg and -types.
func loadConfig(opts *options) (*patternfile.File, error) {
	if opts.config != "" {
		cfg, err := patternfile.LoadFile(opts.config)
		if err != nil {
			return nil, err
		}

		if opts.pkg != "" {
			cfg.Package = opts.pkg
		}

		return cfg, nil
	}

	if opts.pkg == "" {
		return nil, errors.New("either -config or -pkg is required")
	}

	cfg := &patternfile.File{Package: opts.pkg}
	for _, name := range opts.types {
		cfg.Types = append(cfg.Types, patternfile.TypeConfig{Name: name, Pattern: name + patternfile.PatternSuffix})
	}

	if len(cfg.Types) == 0 && opts.init == "" {
		return nil, errors.New("-types is required without -config")
	}

	return cfg, nil
}

// resolvePackage finds the loaded package the config refers to. A relative pattern
// such as ./examples/shop is replaced by the import path it resolved to.
func resolvePackage(cfg *patternfile.File, graph *analyze.TypeGraph) (*analyze.PackageInfo, error) {
	if pkg, ok := graph.Packages[cfg.Package]; ok {
		return pkg, nil
	}

	if len(graph.Packages) != 1 {
		return nil, fmt.Errorf("pattern %q must match exactly one package, matched %d", cfg.Package, len(graph.Packages))
	}

	path := slices.Collect(maps.Keys(graph.Packages))[0]
	cfg.Package = path

	return graph.Packages[path], nil
}

func logDiagnostics(logger *zap.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []zap.Field{
			zap.String("code", d.Code),
			zap.String("type", d.TypeName),
		}

		if d.FieldPath != "" {
			fields = append(fields, zap.String("field", d.FieldPath))
		}

		if len(d.Suggestions) > 0 {
			fields = append(fields, zap.Strings("suggestions", d.Suggestions))
		}

		switch d.Severity {
		case diagnostic.SeverityError:
			logger.Error(d.Message, fields...)
		case diagnostic.SeverityWarning:
			logger.Warn(d.Message, fields...)
		default:
			logger.Debug(d.Message, fields...)
		}
	}
}

func patternNames(cfg *patternfile.File) []string {
	names := make([]string, len(cfg.Types))
	for i := range cfg.Types {
		names[i] = cfg.Types[i].PatternName()
	}

	return names
}
