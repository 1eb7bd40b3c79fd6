package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	// Packages
	gemini "github.com/docloom/go-gemini"
	backend "github.com/docloom/go-gemini/pkg/backend"
	schema "github.com/docloom/go-gemini/pkg/schema"
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels returns all models available on the public Gemini API. Vertex AI
// has no equivalent listing call; regional availability is probed with
// CheckModels instead.
func (c *Client) ListModels(ctx context.Context) ([]*schema.Model, error) {
	if c.target.Kind == backend.VertexAI {
		return nil, gemini.ErrNotImplemented.With("vertex does not list models, use CheckModels to probe availability")
	}

	// Request with pagination
	request := url.Values{}
	result := make([]*schema.Model, 0, 50)
	for {
		// The response is declared inside the loop so that a missing
		// nextPageToken on a later page terminates the loop
		var response schema.ListModelsResponse
		if err := c.DoWithContext(ctx, nil, &response, client.OptPath("models"), client.OptQuery(request)); err != nil {
			return nil, err
		}
		result = append(result, response.Models...)

		// If there are no more pages, return
		if response.NextPageToken == "" {
			break
		}
		request.Set("pageToken", response.NextPageToken)
	}

	// Return models
	return result, nil
}

// GetModel returns the metadata for one model by name
func (c *Client) GetModel(ctx context.Context, name string) (*schema.Model, error) {
	if name == "" {
		return nil, gemini.ErrBadParameter.With("missing model")
	}

	// Request options
	path := c.target.ModelPath(name)
	segments := make([]any, len(path))
	for i, segment := range path {
		segments[i] = segment
	}
	reqOpts, err := c.reqOpts(client.OptPath(segments...))
	if err != nil {
		return nil, err
	}

	// Send the request
	var response schema.Model
	if err := c.DoWithContext(ctx, nil, &response, reqOpts...); err != nil {
		var httpErr httpresponse.Err
		if errors.As(err, &httpErr) && int(httpErr) == http.StatusNotFound {
			return nil, gemini.ErrNotFound.Withf("model %q", name)
		}
		return nil, err
	}

	// Return the model
	return &response, nil
}
