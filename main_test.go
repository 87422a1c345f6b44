package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.keploy.io/protodiff/utils"
)

func TestSetVersion_Empty(t *testing.T) {
	original := version
	t.Cleanup(func() { version = original })

	version = ""
	setVersion()

	assert.Equal(t, "dev", version)
	assert.Equal(t, "dev", utils.Version)
}

func TestSetVersion_Injected(t *testing.T) {
	original := version
	t.Cleanup(func() { version = original })

	version = "1.4.0"
	setVersion()

	assert.Equal(t, "1.4.0", version)
	assert.Equal(t, "1.4.0", utils.Version)
}
