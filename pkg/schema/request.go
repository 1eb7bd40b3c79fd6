package schema

import (
	// Packages
	gemini "github.com/docloom/go-gemini"
	backend "github.com/docloom/go-gemini/pkg/backend"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// NewGenerateRequest returns the request body for a prompt with inline
// media. The content carries exactly two parts, text first and inline data
// second, and the generation config is passed through unmodified.
func NewGenerateRequest(target backend.Target, prompt, mimeType, data string, config GenerationConfig) (*GenerateRequest, error) {
	if prompt == "" {
		return nil, gemini.ErrBadParameter.With("missing prompt")
	}
	if mimeType == "" {
		return nil, gemini.ErrBadParameter.With("missing mime type")
	}
	if data == "" {
		return nil, gemini.ErrBadParameter.With("missing data")
	}
	return &GenerateRequest{
		Contents: []*Content{
			newContent(target, NewTextPart(prompt), NewInlineDataPart(mimeType, data)),
		},
		GenerationConfig: config,
	}, nil
}

// NewTextRequest returns the request body for a text-only prompt
func NewTextRequest(target backend.Target, prompt string, config GenerationConfig) (*GenerateRequest, error) {
	if prompt == "" {
		return nil, gemini.ErrBadParameter.With("missing prompt")
	}
	return &GenerateRequest{
		Contents: []*Content{
			newContent(target, NewTextPart(prompt)),
		},
		GenerationConfig: config,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// newContent assembles a single content turn for the target. Vertex AI
// requires an explicit "user" or "model" role on each content; the public
// endpoint rejects the presence of the role key. The two shapes are
// constructed separately so the key is never present-but-empty.
func newContent(target backend.Target, parts ...*Part) *Content {
	if target.Kind == backend.VertexAI {
		return &Content{Role: RoleUser, Parts: parts}
	}
	return &Content{Parts: parts}
}
