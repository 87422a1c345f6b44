// Package tools holds the maintenance commands of protodiff.
package tools

import (
	"context"
)

type Service interface {
	CreateConfig(ctx context.Context, filePath string, config string) error
}
