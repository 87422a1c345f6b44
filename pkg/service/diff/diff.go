package diff

import (
	"context"

	"go.keploy.io/protodiff/pkg/difftree"
	"go.keploy.io/protodiff/pkg/models"
	"go.uber.org/zap"
)

type Diff struct {
	logger     *zap.Logger
	loader     SchemaLoader
	comparator Comparator
	reporter   Reporter
}

func New(logger *zap.Logger, loader SchemaLoader, comparator Comparator, reporter Reporter) *Diff {
	return &Diff{
		logger:     logger,
		loader:     loader,
		comparator: comparator,
		reporter:   reporter,
	}
}

// Run loads both sides, compares them and renders the result. Nothing is
// rendered when either side fails to load.
func (d *Diff) Run(ctx context.Context, req Request) error {
	before, after, err := d.loader.LoadPair(ctx, req.Before, req.After)
	if err != nil {
		return models.AppError{AppErrorType: models.ErrSchemaLoad, Err: err}
	}

	var root *difftree.Section
	if req.Target == WholeSchema {
		root = d.comparator.CompareSchemas(before, after)
	} else {
		root = d.comparator.CompareNamedType(before, after, req.Target)
	}

	d.logger.Debug("comparison finished", zap.String("target", req.Target))
	if err := d.reporter.Render(ctx, root); err != nil {
		return models.AppError{AppErrorType: models.ErrRenderError, Err: err}
	}
	return nil
}
