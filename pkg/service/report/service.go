// Package report renders a comparison result.
package report

import (
	"context"

	"go.keploy.io/protodiff/pkg/difftree"
)

type Service interface {
	// Render trims root and writes it in the configured format
	Render(ctx context.Context, root *difftree.Section) error
}
