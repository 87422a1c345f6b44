// Package diff runs a full comparison: load both schemas, compare, report.
package diff

import (
	"context"

	"go.keploy.io/protodiff/pkg/difftree"
	"go.keploy.io/protodiff/pkg/platform/protoschema"
	"go.keploy.io/protodiff/pkg/service/schemadiff"
)

// WholeSchema is the target that compares every top-level type.
const WholeSchema = "."

type Service interface {
	Run(ctx context.Context, req Request) error
}

type Request struct {
	Before protoschema.Source
	After  protoschema.Source
	// Target is WholeSchema or the fully-qualified name of a message or enum
	Target string
}

type SchemaLoader interface {
	LoadPair(ctx context.Context, a, b protoschema.Source) (*protoschema.Schema, *protoschema.Schema, error)
}

type Comparator interface {
	CompareSchemas(a, b schemadiff.Schema) *difftree.Section
	CompareNamedType(a, b schemadiff.Schema, name string) *difftree.Section
}

type Reporter interface {
	Render(ctx context.Context, root *difftree.Section) error
}
