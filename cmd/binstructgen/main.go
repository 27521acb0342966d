// Command binstructgen generates binary codecs for structs marked with //binstruct:struct.
//
// Usage:
//
//	binstructgen [flags] [packages]
//
// It is meant to be run from go:generate:
//
//	//go:generate go run github.com/oy3o/binstruct/cmd/binstructgen -o . ./...
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oy3o/binstruct/internal/config"
	"github.com/oy3o/binstruct/internal/frontend"
	"github.com/oy3o/binstruct/internal/logger"
	"github.com/oy3o/binstruct/internal/processor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"dir":       "dir",
	"output":    "output",
	"marker":    "marker",
	"tag":       "tag",
	"exclude":   "exclude",
	"tests":     "tests",
	"workers":   "workers",
	"dry-run":   "dry_run",
	"log-level": "log.level",
	"log-json":  "log.json",
}

func newRootCmd() *cobra.Command {
	def := config.Default()
	cmd := &cobra.Command{
		Use:           "binstructgen [flags] [packages]",
		Short:         "Generate binary codecs for marked Go structs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	f := cmd.Flags()
	f.StringP("dir", "C", def.Dir, "directory to load packages from")
	f.StringP("output", "o", def.Output, "root directory of the generated binstructgen tree")
	f.String("marker", def.Marker, "comment directive marking struct declarations")
	f.String("tag", def.Tag, "struct tag key holding size declarations")
	f.StringSlice("exclude", def.Exclude, "doublestar globs of files to skip")
	f.Bool("tests", def.Tests, "also scan _test.go files")
	f.IntP("workers", "j", def.Workers, "number of codecs generated in parallel")
	f.BoolP("dry-run", "n", def.DryRun, "report what would be generated without writing")
	f.String("log-level", def.Log.Level, "log level (debug, info, warn, error, disabled)")
	f.Bool("log-json", def.Log.JSON, "log in JSON")
	return cmd
}

func overrides(flags *pflag.FlagSet, args []string) (map[string]any, error) {
	values := make(map[string]any)
	var err error
	flags.Visit(func(fl *pflag.Flag) {
		key, ok := flagKeys[fl.Name]
		if !ok || err != nil {
			return
		}
		switch fl.Value.Type() {
		case "stringSlice":
			values[key], err = flags.GetStringSlice(fl.Name)
		default:
			values[key] = fl.Value.String()
		}
	})
	if len(args) > 0 {
		values["patterns"] = args
	}
	return values, err
}

func run(cmd *cobra.Command, args []string) error {
	values, err := overrides(cmd.Flags(), args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(values)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		Output:     cmd.ErrOrStderr(),
		JSON:       cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})
	ctx := logger.ContextWithLogger(cmd.Context(), log)

	batch, err := frontend.Load(ctx, frontend.Options{
		Dir:      cfg.Dir,
		Patterns: cfg.Patterns,
		Marker:   cfg.Marker,
		Tag:      cfg.Tag,
		Exclude:  cfg.Exclude,
		Tests:    cfg.Tests,
	})
	if err != nil {
		log.Error("Failed to load packages", "error", err)
		return err
	}
	for _, d := range batch.Diagnostics {
		log.Error("Invalid declaration", "error", d)
	}
	log.Debug("Found structs", "count", len(batch.Descriptors))

	p := processor.New(processor.Options{
		Output:  cfg.Output,
		Workers: cfg.Workers,
		DryRun:  cfg.DryRun,
	})
	res, err := p.Process(ctx, batch.Descriptors, batch.Diagnostics...)
	if err != nil {
		if errors.Is(err, processor.ErrDiagnostics) {
			for _, d := range res.Diagnostics {
				fmt.Fprintln(cmd.ErrOrStderr(), d)
			}
		}
		log.Error("Generation failed", "error", err)
		return err
	}
	log.Info("Done", "files", len(res.Files))
	return nil
}
