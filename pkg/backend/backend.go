/*
backend resolves which API surface a request is sent to: the public
generative-language endpoint or a Vertex AI project and region.
*/
package backend

import (
	"fmt"
	"os"

	// Packages
	gemini "github.com/docloom/go-gemini"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Kind distinguishes the public API from the managed Vertex AI surface
type Kind int

// Target is a fully-resolved backend destination. The zero value is the
// public API.
type Target struct {
	Kind    Kind
	Project string
	Region  string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	GeminiAPI Kind = iota
	VertexAI
)

const (
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	vertexEndpoint = "https://%s-aiplatform.googleapis.com/v1"
)

const (
	// Environment variables read by FromEnv
	EnvProject = "GCP_PROJECT"
	EnvRegion  = "GCP_REGION"

	// DefaultRegion applies when GCP_PROJECT is set without GCP_REGION
	DefaultRegion = "us-west1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Gemini returns a target for the public API
func Gemini() Target {
	return Target{Kind: GeminiAPI}
}

// Vertex returns a target for a Vertex AI project and region
func Vertex(project, region string) (Target, error) {
	if project == "" {
		return Target{}, gemini.ErrBadParameter.With("missing project")
	}
	if region == "" {
		return Target{}, gemini.ErrBadParameter.With("missing region")
	}
	return Target{Kind: VertexAI, Project: project, Region: region}, nil
}

// FromEnv resolves the target from the environment. GCP_PROJECT selects
// Vertex AI, with GCP_REGION defaulting to us-west1. When GCP_PROJECT is
// unset the public API is used.
func FromEnv() Target {
	project := os.Getenv(EnvProject)
	if project == "" {
		return Gemini()
	}
	region := os.Getenv(EnvRegion)
	if region == "" {
		region = DefaultRegion
	}
	return Target{Kind: VertexAI, Project: project, Region: region}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Endpoint returns the base URL for the target
func (t Target) Endpoint() string {
	if t.Kind == VertexAI {
		return fmt.Sprintf(vertexEndpoint, t.Region)
	}
	return geminiEndpoint
}

// ModelPath returns the request path segments for a model on this target
func (t Target) ModelPath(model string) []string {
	if t.Kind == VertexAI {
		return []string{"projects", t.Project, "locations", t.Region, "publishers", "google", "models", model}
	}
	return []string{"models", model}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (k Kind) String() string {
	switch k {
	case GeminiAPI:
		return "gemini"
	case VertexAI:
		return "vertex"
	}
	return fmt.Sprintf("kind %d", int(k))
}

func (t Target) String() string {
	if t.Kind == VertexAI {
		return fmt.Sprintf("vertex (project %q, region %q)", t.Project, t.Region)
	}
	return t.Kind.String()
}
