/*
client implements an API client for the Gemini generateContent API, served
either by the public generative-language endpoint or by Vertex AI.
https://ai.google.dev/api/generate-content
*/
package client

import (
	"context"
	"os"

	// Packages
	gemini "github.com/docloom/go-gemini"
	backend "github.com/docloom/go-gemini/pkg/backend"
	client "github.com/mutablelogic/go-client"
	oauth2 "golang.org/x/oauth2"
	google "golang.org/x/oauth2/google"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is a client for the generateContent API, bound to a single
// backend target.
type Client struct {
	*client.Client

	target backend.Target
	tokens oauth2.TokenSource
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultName = "gemini"

	// OAuth scope required for Vertex AI requests
	scopeCloudPlatform = "https://www.googleapis.com/auth/cloud-platform"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewGemini creates a client for the public Gemini API with the given API key
func NewGemini(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if apiKey == "" {
		return nil, gemini.ErrBadParameter.With("missing API key")
	}

	// Default options come first so that callers can override the endpoint
	target := backend.Gemini()
	opts = append([]client.ClientOpt{
		client.OptEndpoint(target.Endpoint()),
		client.OptHeader("x-goog-api-key", apiKey),
	}, opts...)
	c, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{Client: c, target: target}, nil
}

// NewVertex creates a client for Vertex AI in the given project and region.
// When tokens is nil, Application Default Credentials are used.
func NewVertex(ctx context.Context, project, region string, tokens oauth2.TokenSource, opts ...client.ClientOpt) (*Client, error) {
	target, err := backend.Vertex(project, region)
	if err != nil {
		return nil, err
	}
	if tokens == nil {
		if tokens, err = google.DefaultTokenSource(ctx, scopeCloudPlatform); err != nil {
			return nil, gemini.ErrBadParameter.Withf("application default credentials: %v", err)
		}
	}

	// Default options come first so that callers can override the endpoint
	opts = append([]client.ClientOpt{
		client.OptEndpoint(target.Endpoint()),
	}, opts...)
	c, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{Client: c, target: target, tokens: tokens}, nil
}

// New creates a client for the given target. The API key is used for the
// public Gemini API and ignored for Vertex AI.
func New(ctx context.Context, target backend.Target, apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if target.Kind == backend.VertexAI {
		return NewVertex(ctx, target.Project, target.Region, nil, opts...)
	}
	return NewGemini(apiKey, opts...)
}

// NewFromEnv creates a client from the environment: GCP_PROJECT selects
// Vertex AI, otherwise GEMINI_API_KEY (or GOOGLE_API_KEY) selects the
// public Gemini API.
func NewFromEnv(ctx context.Context, opts ...client.ClientOpt) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	return New(ctx, backend.FromEnv(), apiKey, opts...)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the client name
func (*Client) Name() string {
	return defaultName
}

// Target returns the backend target the client is bound to
func (c *Client) Target() backend.Target {
	return c.target
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// reqOpts prepends the request options applied to every call. Vertex AI
// requests carry an OAuth bearer token; the public API authenticates
// through the x-goog-api-key header set on the client.
func (c *Client) reqOpts(opts ...client.RequestOpt) ([]client.RequestOpt, error) {
	if c.tokens == nil {
		return opts, nil
	}
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	return append([]client.RequestOpt{
		client.OptReqHeader("Authorization", token.Type()+" "+token.AccessToken),
	}, opts...), nil
}

// modelPath returns the request path for a model, with the action appended
// to the final segment (for example "models", "gemini-1.5-flash:generateContent")
func (c *Client) modelPath(model, action string) []string {
	path := c.target.ModelPath(model)
	path[len(path)-1] += ":" + action
	return path
}
