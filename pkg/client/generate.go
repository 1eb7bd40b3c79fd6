package client

import (
	"context"

	// Packages
	gemini "github.com/docloom/go-gemini"
	backend "github.com/docloom/go-gemini/pkg/backend"
	opt "github.com/docloom/go-gemini/pkg/opt"
	schema "github.com/docloom/go-gemini/pkg/schema"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Generate sends a prompt to a model and returns the response
func (c *Client) Generate(ctx context.Context, model, prompt string, opts ...opt.Opt) (*schema.GenerateResponse, error) {
	if model == "" {
		return nil, gemini.ErrBadParameter.With("missing model")
	}

	// Apply options
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Build the request
	request, err := generateRequestFromOpts(c.target, prompt, options)
	if err != nil {
		return nil, err
	}

	// Create JSON payload
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Request options
	path := c.modelPath(model, "generateContent")
	segments := make([]any, len(path))
	for i, segment := range path {
		segments[i] = segment
	}
	reqOpts, err := c.reqOpts(client.OptPath(segments...))
	if err != nil {
		return nil, err
	}

	// Send the request
	var response schema.GenerateResponse
	if err := c.DoWithContext(ctx, payload, &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// generateRequestFromOpts builds a generate request from the prompt and the
// applied options. At most one attachment is supported per request.
func generateRequestFromOpts(target backend.Target, prompt string, options *opt.Options) (*schema.GenerateRequest, error) {
	var request *schema.GenerateRequest
	var err error

	// Contents and generation config
	config := options.GenerationConfig()
	attachments := options.Attachments()
	switch len(attachments) {
	case 0:
		request, err = schema.NewTextRequest(target, prompt, config)
	case 1:
		request, err = schema.NewGenerateRequest(target, prompt, attachments[0].Type(), attachments[0].Base64(), config)
	default:
		return nil, gemini.ErrBadParameter.With("at most one attachment per request")
	}
	if err != nil {
		return nil, err
	}

	// System instruction
	if system := options.SystemPrompt(); system != "" {
		request.SystemInstruction = schema.NewTextContent("", system)
	}

	// Safety settings
	if settings := options.SafetySettings(); len(settings) > 0 {
		request.SafetySettings = settings
	}

	// Return the request
	return request, nil
}
