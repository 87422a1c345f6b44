// Package protoschema compiles .proto sources and converts them into the
// read-only snapshots the comparison works on.
package protoschema

import (
	"context"
	"fmt"

	"github.com/bufbuild/protocompile"
	"github.com/bufbuild/protocompile/reporter"
	"go.keploy.io/protodiff/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Loader struct {
	logger      *zap.Logger
	sink        DiagnosticSink
	importPaths []string
}

// Source names one side of a comparison.
type Source struct {
	RootDir   string
	EntryFile string
}

func NewLoader(logger *zap.Logger, sink DiagnosticSink, importPaths []string) *Loader {
	return &Loader{
		logger:      logger,
		sink:        sink,
		importPaths: importPaths,
	}
}

// Load compiles entryFile with rootDir as the primary import root. Every error
// and warning is forwarded to the sink before the load fails.
func (l *Loader) Load(ctx context.Context, rootDir, entryFile string) (*Schema, error) {
	roots, err := utils.ImportRoots(rootDir, l.importPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve import roots for %s: %w", entryFile, err)
	}
	entry, err := utils.ImportPath(entryFile, roots)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", entryFile, err)
	}

	l.logger.Debug("compiling schema", zap.String("entry", entry), zap.Strings("importPaths", roots))

	c := &protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{ImportPaths: roots}),
		Reporter: reporter.NewReporter(
			func(e reporter.ErrorWithPos) error {
				l.sink.AddError(toDiagnostic(SeverityError, e))
				return nil
			},
			func(w reporter.ErrorWithPos) {
				l.sink.AddWarning(toDiagnostic(SeverityWarning, w))
			},
		),
	}

	files, err := c.Compile(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", entryFile, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("failed to compile %s: nothing compiled", entryFile)
	}
	return newSchema(files[0]), nil
}

// LoadPair loads both sides concurrently. The first failure cancels the other load.
func (l *Loader) LoadPair(ctx context.Context, a, b Source) (*Schema, *Schema, error) {
	var before, after *Schema
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := l.Load(ctx, a.RootDir, a.EntryFile)
		before = s
		return err
	})
	g.Go(func() error {
		s, err := l.Load(ctx, b.RootDir, b.EntryFile)
		after = s
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return before, after, nil
}

func toDiagnostic(sev Severity, e reporter.ErrorWithPos) Diagnostic {
	pos := e.GetPosition()
	msg := e.Error()
	if inner := e.Unwrap(); inner != nil {
		msg = inner.Error()
	}
	return Diagnostic{
		Severity: sev,
		File:     pos.Filename,
		Line:     pos.Line,
		Column:   pos.Col,
		Message:  msg,
	}
}
