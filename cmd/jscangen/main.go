// Package main provides the CLI entry point for jscangen, a tool that
// generates zero-copy JSON decoders from schema-annotated Go struct
// declarations or standalone YAML schema documents.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"go.quantedge.dev/jscan/gen"
	"go.quantedge.dev/jscan/log"
	"go.quantedge.dev/jscan/profile"
	"go.quantedge.dev/jscan/version"
)

func main() {
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "jscangen",
		Short:         "Generate zero-copy JSON decoders from schema declarations",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newGenerateCmd(logCfg, profileCfg),
		newCheckCmd(logCfg),
	)

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := profileCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newGenerateCmd(logCfg *log.Config, profileCfg *profile.Config) *cobra.Command {
	var (
		outDir string
		pkg    string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "generate [flags] <schema.yaml|schema.go|dir> [more ...]",
		Short: "Generate decoder source files from one or more schema files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logCfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if !strict {
				logger.Warn("--strict=false has no effect; unrecognized directive keys are always errors")
			}

			profiler := profileCfg.NewProfiler()
			if err := profiler.Start(); err != nil {
				return fmt.Errorf("starting profiler: %w", err)
			}

			defer func() {
				if err := profiler.Stop(); err != nil {
					logger.Error("stopping profiler", "error", err)
				}
			}()

			paths, err := expandSchemaPaths(args)
			if err != nil {
				return err
			}

			return runGenerate(logger, paths, outDir, pkg)
		},
	}

	cmd.Flags().StringVarP(&outDir, "output-dir", "o", "",
		"directory to write generated files to (default: alongside each input file)")
	cmd.Flags().StringVar(&pkg, "package", "",
		"package name override for generated files (default: the schema's declared package)")
	cmd.Flags().BoolVar(&strict, "strict", true,
		"treat unrecognized directive keys as errors (always true)")

	return cmd
}

func newCheckCmd(logCfg *log.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check <schema.yaml|schema.go|dir> [more ...]",
		Short: "Parse schema files and report errors without generating output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logCfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			paths, err := expandSchemaPaths(args)
			if err != nil {
				return err
			}

			return runCheck(logger, paths)
		},
	}
}

// expandSchemaPaths resolves each argument to a list of schema files,
// expanding directory arguments into their *.yaml, *.yml, and *.go entries.
func expandSchemaPaths(args []string) ([]string, error) {
	var paths []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}

		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}

		for _, e := range entries {
			if e.IsDir() {
				continue
			}

			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".yaml", ".yml", ".go":
				paths = append(paths, filepath.Join(arg, e.Name()))
			}
		}
	}

	return paths, nil
}

func newLogger(cfg *log.Config, w io.Writer) (*slog.Logger, error) {
	handler, err := cfg.NewHandler(w)
	if err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}

	return slog.New(handler), nil
}

func runGenerate(logger *slog.Logger, args []string, outDir, pkg string) error {
	for _, path := range args {
		records, err := loadRecords(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		for _, r := range records {
			if pkg != "" {
				r.Package = pkg
			}

			src, err := gen.Generate(r)
			if err != nil {
				return fmt.Errorf("%s: generate %s: %w", path, r.Name, err)
			}

			dest := outputPath(path, r, outDir)

			if err := os.WriteFile(dest, []byte(src), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}

			logger.Info("wrote decoder", "path", dest, "record", r.Name, "decoder", r.DecoderName())
		}
	}

	return nil
}

func runCheck(logger *slog.Logger, args []string) error {
	total := 0

	for _, path := range args {
		records, err := loadRecords(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		for _, r := range records {
			if _, err := gen.Generate(r); err != nil {
				return fmt.Errorf("%s: %s: %w", path, r.Name, err)
			}
		}

		total += len(records)
		logger.Info("checked schema file", "path", path, "records", len(records))
	}

	logger.Info("check complete", "records", total, "files", len(args))

	return nil
}

func loadRecords(path string) ([]gen.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return gen.LoadSchemaFile(path)
	default:
		return gen.ParseGoFile(path)
	}
}

func outputPath(inputPath string, r gen.Record, outDir string) string {
	base := strings.ToLower(r.Name) + "_jscan.go"

	if outDir != "" {
		return filepath.Join(outDir, base)
	}

	return filepath.Join(filepath.Dir(inputPath), base)
}
