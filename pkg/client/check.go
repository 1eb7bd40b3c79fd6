package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	// Packages
	opt "github.com/docloom/go-gemini/pkg/opt"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Status classifies the outcome of a model availability probe
type Status int

// Candidate is a model name with a human-readable status annotation
type Candidate struct {
	Model string `json:"model" yaml:"model"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// CheckResult is the outcome of probing one model
type CheckResult struct {
	Model  string `json:"model"`
	Status Status `json:"status"`
	Tokens int    `json:"tokens,omitempty"` // total tokens used by the probe
	Err    error  `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Available Status = iota
	NotAvailable
	SchemaMismatch
	Failed
)

// probePrompt is the minimal prompt sent when checking a model
const probePrompt = "Hello"

// DefaultCandidates are the models worth probing in a region
var DefaultCandidates = []Candidate{
	{Model: "gemini-1.5-flash", Note: "GA - Recommended"},
	{Model: "gemini-1.5-pro", Note: "GA - High accuracy"},
	{Model: "gemini-1.0-pro", Note: "GA - Legacy"},
	{Model: "gemini-2.0-flash-exp", Note: "Experimental"},
	{Model: "gemini-2.5-flash", Note: "Preview"},
	{Model: "gemini-2.5-pro", Note: "Preview"},
	{Model: "gemini-2.5-flash-lite", Note: "Preview - Limited availability"},
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CheckModel probes a model with a minimal one-token request and classifies
// the outcome
func (c *Client) CheckModel(ctx context.Context, model string) CheckResult {
	result := CheckResult{Model: model}
	response, err := c.Generate(ctx, model, probePrompt, opt.WithMaxTokens(1))
	if err != nil {
		result.Status = classify(err)
		result.Err = err
		return result
	}
	result.Status = Available
	if response.UsageMetadata != nil {
		result.Tokens = response.UsageMetadata.TotalTokenCount
	}
	return result
}

// CheckModels probes models sequentially, returning results in input order
func (c *Client) CheckModels(ctx context.Context, models ...string) []CheckResult {
	results := make([]CheckResult, 0, len(models))
	for _, model := range models {
		results = append(results, c.CheckModel(ctx, model))
	}
	return results
}

// Recommend returns the preferred model among the available results:
// gemini-2.5-flash when available, else gemini-1.5-flash, else the first
// available model. Returns the empty string when nothing is available.
func Recommend(results []CheckResult) string {
	var first string
	available := make(map[string]bool, len(results))
	for _, result := range results {
		if result.Status != Available {
			continue
		}
		available[result.Model] = true
		if first == "" {
			first = result.Model
		}
	}
	for _, model := range []string{"gemini-2.5-flash", "gemini-1.5-flash"} {
		if available[model] {
			return model
		}
	}
	return first
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// classify maps a probe error to an availability status. A 404 (or an error
// reading "not found") means the model is absent from the region; a 400
// means the model is reachable but rejected the request shape.
func classify(err error) Status {
	if err == nil {
		return Available
	}
	var httpErr httpresponse.Err
	if errors.As(err, &httpErr) {
		switch int(httpErr) {
		case http.StatusNotFound:
			return NotAvailable
		case http.StatusBadRequest:
			return SchemaMismatch
		}
	}
	if strings.Contains(strings.ToLower(err.Error()), "not found") {
		return NotAvailable
	}
	return Failed
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Status) String() string {
	switch s {
	case Available:
		return "available"
	case NotAvailable:
		return "not available"
	case SchemaMismatch:
		return "schema mismatch"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("status %d", int(s))
}
