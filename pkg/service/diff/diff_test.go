package diff

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.keploy.io/protodiff/pkg/difftree"
	"go.keploy.io/protodiff/pkg/models"
	"go.keploy.io/protodiff/pkg/platform/protoschema"
	"go.keploy.io/protodiff/pkg/service/schemadiff"
	"go.uber.org/zap/zaptest"
)

// MockLoader implements the SchemaLoader interface for testing
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) LoadPair(ctx context.Context, a, b protoschema.Source) (*protoschema.Schema, *protoschema.Schema, error) {
	args := m.Called(ctx, a, b)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*protoschema.Schema), args.Get(1).(*protoschema.Schema), args.Error(2)
}

// MockComparator implements the Comparator interface for testing
type MockComparator struct {
	mock.Mock
}

func (m *MockComparator) CompareSchemas(a, b schemadiff.Schema) *difftree.Section {
	args := m.Called(a, b)
	return args.Get(0).(*difftree.Section)
}

func (m *MockComparator) CompareNamedType(a, b schemadiff.Schema, name string) *difftree.Section {
	args := m.Called(a, b, name)
	return args.Get(0).(*difftree.Section)
}

// MockReporter implements the Reporter interface for testing
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Render(ctx context.Context, root *difftree.Section) error {
	args := m.Called(ctx, root)
	return args.Error(0)
}

var (
	beforeSrc = protoschema.Source{RootDir: "v1", EntryFile: "a.proto"}
	afterSrc  = protoschema.Source{RootDir: "v2", EntryFile: "a.proto"}
)

func TestRun_WholeSchema(t *testing.T) {
	ctx := context.Background()
	a, b := &protoschema.Schema{Path: "v1"}, &protoschema.Schema{Path: "v2"}
	root := difftree.NewRoot()

	loader := &MockLoader{}
	comparator := &MockComparator{}
	reporter := &MockReporter{}
	loader.On("LoadPair", ctx, beforeSrc, afterSrc).Return(a, b, nil)
	comparator.On("CompareSchemas", a, b).Return(root)
	reporter.On("Render", ctx, root).Return(nil)

	d := New(zaptest.NewLogger(t), loader, comparator, reporter)
	require.NoError(t, d.Run(ctx, Request{Before: beforeSrc, After: afterSrc, Target: WholeSchema}))

	loader.AssertExpectations(t)
	comparator.AssertExpectations(t)
	comparator.AssertNotCalled(t, "CompareNamedType", mock.Anything, mock.Anything, mock.Anything)
	reporter.AssertExpectations(t)
}

func TestRun_NamedType(t *testing.T) {
	ctx := context.Background()
	a, b := &protoschema.Schema{}, &protoschema.Schema{}
	root := difftree.NewRoot()

	loader := &MockLoader{}
	comparator := &MockComparator{}
	reporter := &MockReporter{}
	loader.On("LoadPair", ctx, beforeSrc, afterSrc).Return(a, b, nil)
	comparator.On("CompareNamedType", a, b, "geo.Point").Return(root)
	reporter.On("Render", ctx, root).Return(nil)

	d := New(zaptest.NewLogger(t), loader, comparator, reporter)
	require.NoError(t, d.Run(ctx, Request{Before: beforeSrc, After: afterSrc, Target: "geo.Point"}))

	comparator.AssertExpectations(t)
	reporter.AssertExpectations(t)
}

func TestRun_LoadFailureRendersNothing(t *testing.T) {
	ctx := context.Background()
	loadErr := errors.New("syntax error")

	loader := &MockLoader{}
	comparator := &MockComparator{}
	reporter := &MockReporter{}
	loader.On("LoadPair", ctx, beforeSrc, afterSrc).Return(nil, nil, loadErr)

	d := New(zaptest.NewLogger(t), loader, comparator, reporter)
	err := d.Run(ctx, Request{Before: beforeSrc, After: afterSrc, Target: WholeSchema})

	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.ErrorIs(t, err, models.AppError{AppErrorType: models.ErrSchemaLoad})
	comparator.AssertNotCalled(t, "CompareSchemas", mock.Anything, mock.Anything)
	reporter.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestRun_RenderError(t *testing.T) {
	ctx := context.Background()
	a, b := &protoschema.Schema{}, &protoschema.Schema{}
	root := difftree.NewRoot()
	renderErr := errors.New("closed pipe")

	loader := &MockLoader{}
	comparator := &MockComparator{}
	reporter := &MockReporter{}
	loader.On("LoadPair", ctx, beforeSrc, afterSrc).Return(a, b, nil)
	comparator.On("CompareSchemas", a, b).Return(root)
	reporter.On("Render", ctx, root).Return(renderErr)

	d := New(zaptest.NewLogger(t), loader, comparator, reporter)
	err := d.Run(ctx, Request{Before: beforeSrc, After: afterSrc, Target: WholeSchema})
	assert.ErrorIs(t, err, renderErr)
	assert.ErrorIs(t, err, models.AppError{AppErrorType: models.ErrRenderError})
}
