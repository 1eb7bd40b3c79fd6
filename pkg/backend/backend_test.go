package backend_test

import (
	"testing"

	// Packages
	gemini "github.com/docloom/go-gemini"
	backend "github.com/docloom/go-gemini/pkg/backend"
	assert "github.com/stretchr/testify/assert"
)

func Test_backend_001(t *testing.T) {
	assert := assert.New(t)
	target := backend.Gemini()
	assert.Equal(backend.GeminiAPI, target.Kind)
	assert.Equal("https://generativelanguage.googleapis.com/v1beta", target.Endpoint())
	assert.Equal([]string{"models", "gemini-1.5-flash"}, target.ModelPath("gemini-1.5-flash"))
}

func Test_backend_002(t *testing.T) {
	assert := assert.New(t)
	target, err := backend.Vertex("proj-1", "us-west1")
	assert.NoError(err)
	assert.Equal(backend.VertexAI, target.Kind)
	assert.Equal("proj-1", target.Project)
	assert.Equal("us-west1", target.Region)
	assert.Equal("https://us-west1-aiplatform.googleapis.com/v1", target.Endpoint())
	assert.Equal(
		[]string{"projects", "proj-1", "locations", "us-west1", "publishers", "google", "models", "gemini-1.5-flash"},
		target.ModelPath("gemini-1.5-flash"),
	)
}

func Test_backend_003(t *testing.T) {
	assert := assert.New(t)

	_, err := backend.Vertex("", "us-west1")
	assert.ErrorIs(err, gemini.ErrBadParameter)

	_, err = backend.Vertex("proj-1", "")
	assert.ErrorIs(err, gemini.ErrBadParameter)
}

func Test_backend_from_env_public(t *testing.T) {
	assert := assert.New(t)
	t.Setenv(backend.EnvProject, "")
	t.Setenv(backend.EnvRegion, "")
	target := backend.FromEnv()
	assert.Equal(backend.GeminiAPI, target.Kind)
}

func Test_backend_from_env_default_region(t *testing.T) {
	assert := assert.New(t)
	t.Setenv(backend.EnvProject, "proj-1")
	t.Setenv(backend.EnvRegion, "")
	target := backend.FromEnv()
	assert.Equal(backend.VertexAI, target.Kind)
	assert.Equal("proj-1", target.Project)
	assert.Equal(backend.DefaultRegion, target.Region)
}

func Test_backend_from_env_region(t *testing.T) {
	assert := assert.New(t)
	t.Setenv(backend.EnvProject, "proj-1")
	t.Setenv(backend.EnvRegion, "europe-west4")
	target := backend.FromEnv()
	assert.Equal(backend.VertexAI, target.Kind)
	assert.Equal("europe-west4", target.Region)
}

func Test_backend_stringify(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("gemini", backend.Gemini().String())
	target, err := backend.Vertex("proj-1", "us-west1")
	assert.NoError(err)
	assert.Contains(target.String(), "proj-1")
	assert.Contains(target.String(), "us-west1")
}
