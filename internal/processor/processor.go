// Package processor runs one generation round: parse, check, generate and write.
package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/oy3o/binstruct/compiler"
	"github.com/oy3o/binstruct/internal/logger"
)

// ErrDiagnostics is returned when at least one declaration was rejected.
// The diagnostics themselves are in Result.Diagnostics.
var ErrDiagnostics = errors.New("struct declarations have errors")

type Options struct {
	// Output is the root generated paths are resolved against.
	Output  string
	Workers int
	DryRun  bool
	// Fs receives generated files. Defaults to the OS file system.
	Fs afero.Fs
}

// Result lists the files of a round and the diagnostics that stopped it, if any.
type Result struct {
	Files       []string
	Diagnostics []error
}

type Processor struct {
	parser    *compiler.Parser
	checker   *compiler.DependencyChecker
	generator *compiler.Generator
	opts      Options
}

func New(opts Options) *Processor {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Processor{
		parser:    compiler.NewParser(),
		checker:   compiler.NewDependencyChecker(),
		generator: compiler.NewGenerator(),
		opts:      opts,
	}
}

// Process generates codecs for descs. Every descriptor is parsed so that all
// invalid declarations are reported together; if any fails, or if reported is
// non-empty, nothing is checked or written. Front-ends pass their own
// diagnostics as reported.
func (p *Processor) Process(ctx context.Context, descs []compiler.ClassDescriptor, reported ...error) (*Result, error) {
	log := logger.FromContext(ctx)
	res := &Result{Diagnostics: append([]error(nil), reported...)}

	defs := make([]compiler.StructDef, 0, len(descs))
	for _, d := range descs {
		def, err := p.parser.Parse(d)
		if err != nil {
			log.Error("Invalid struct", "struct", d.Name, "error", err)
			res.Diagnostics = append(res.Diagnostics, err)
			continue
		}
		log.Debug("Parsed struct", "struct", def.Name, "fields", len(def.Fields))
		defs = append(defs, def)
	}
	if len(res.Diagnostics) > 0 {
		return res, fmt.Errorf("%w: %d rejected", ErrDiagnostics, len(res.Diagnostics))
	}

	if err := p.checker.Check(defs); err != nil {
		log.Error("Unresolvable dependencies", "error", err)
		res.Diagnostics = append(res.Diagnostics, err)
		return res, fmt.Errorf("%w: %v", ErrDiagnostics, err)
	}

	var mu sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(p.opts.Workers)
	for _, def := range defs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := p.generator.Generate(def)
			if err != nil {
				return err
			}
			path, err := p.write(src)
			if err != nil {
				return err
			}
			log.Info("Generated codec", "struct", def.Name, "file", path, "dry_run", p.opts.DryRun)

			mu.Lock()
			res.Files = append(res.Files, path)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return res, err
	}
	sort.Strings(res.Files)
	return res, nil
}

func (p *Processor) write(src compiler.SourceFile) (string, error) {
	path := filepath.Join(p.opts.Output, filepath.FromSlash(src.Path))
	if p.opts.DryRun {
		return path, nil
	}
	if err := p.opts.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(p.opts.Fs, path, src.Code, 0o644); err != nil {
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
