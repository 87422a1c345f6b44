// Package schemadiff compares two versions of a protobuf schema and reports
// the structural differences as a difftree.
package schemadiff

import (
	"go.keploy.io/protodiff/pkg/difftree"
	"go.keploy.io/protodiff/pkg/models"
)

// Service defines the comparison entry points
type Service interface {
	// CompareSchemas diffs every top-level message and enum of the two entry files
	CompareSchemas(a, b Schema) *difftree.Section
	// CompareNamedType diffs the message or enum with the given fully-qualified name
	CompareNamedType(a, b Schema, name string) *difftree.Section
}

// Schema is the read-only view of a loaded schema the comparison works on
type Schema interface {
	// Messages returns the top-level messages of the entry file in declaration order
	Messages() []*models.Message
	// Enums returns the top-level enums of the entry file in declaration order
	Enums() []*models.Enum
	FindMessage(fullName string) *models.Message
	FindEnum(fullName string) *models.Enum
}

type Options struct {
	// LegacyDefaults compares uint32, double, bool, string and enum defaults
	// of the old field against themselves, as earlier releases did.
	LegacyDefaults bool
}
