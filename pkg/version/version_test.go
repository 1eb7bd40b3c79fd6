package version_test

import (
	"bytes"
	"encoding/json"
	"testing"

	// Packages
	version "github.com/docloom/go-gemini/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_version_001(t *testing.T) {
	// Test that a version string is always available
	assert := assert.New(t)
	assert.NotEmpty(version.Version())
}

func Test_version_002(t *testing.T) {
	// Test that the metadata is valid JSON and carries the executable name
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(version.JSON(&buf, "gemini"))

	var metadata map[string]string
	assert.NoError(json.Unmarshal(buf.Bytes(), &metadata))
	assert.Equal("gemini", metadata["name"])
	assert.NotEmpty(metadata["version"])
	assert.NotEmpty(metadata["compiler"])
}
