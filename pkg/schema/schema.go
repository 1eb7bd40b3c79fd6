/*
schema defines the generateContent REST wire format shared by the public
generative-language endpoint and the Vertex AI endpoint.
*/
package schema

import (
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// CONTENT & PARTS

// Content is the multi-part content of a single message turn. The role is
// set on the managed backend only; the public endpoint rejects the key.
type Content struct {
	Parts []*Part `json:"parts"`
	Role  string  `json:"role,omitempty"`
}

// Part is a single unit within a Content. Exactly one field should be set.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

// InlineData carries inline media (typically an image) as base64 text
type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64-encoded
}

///////////////////////////////////////////////////////////////////////////////
// ROLE CONSTANTS
//
// The API accepts no role values other than these two.

const (
	RoleUser  = "user"
	RoleModel = "model"
)

///////////////////////////////////////////////////////////////////////////////
// GENERATE CONTENT REQUEST

// GenerationConfig is an opaque set of generation parameters, passed through
// to the API unmodified. A nil config omits the generationConfig key; an
// empty non-nil config serializes as an empty object.
type GenerationConfig map[string]any

// GenerateRequest is the request body for
// POST {model}:generateContent on either backend
type GenerateRequest struct {
	Contents          []*Content       `json:"contents"`
	SafetySettings    []*SafetySetting `json:"safetySettings,omitempty"`
	SystemInstruction *Content         `json:"systemInstruction,omitempty"`
	GenerationConfig  GenerationConfig `json:"generationConfig,omitzero"`
}

// SafetySetting controls the blocking threshold for one harm category
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

///////////////////////////////////////////////////////////////////////////////
// GENERATE CONTENT RESPONSE

// GenerateResponse is the response body from generateContent
type GenerateResponse struct {
	Candidates     []*Candidate    `json:"candidates,omitempty"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
	UsageMetadata  *UsageMetadata  `json:"usageMetadata,omitempty"`
	ModelVersion   string          `json:"modelVersion,omitempty"`
	ResponseID     string          `json:"responseId,omitempty"`
}

// Candidate is a single response candidate
type Candidate struct {
	Content       *Content        `json:"content,omitempty"`
	FinishReason  string          `json:"finishReason,omitempty"`
	SafetyRatings []*SafetyRating `json:"safetyRatings,omitempty"`
	Index         int             `json:"index,omitempty"`
}

// PromptFeedback reports whether the prompt was blocked
type PromptFeedback struct {
	BlockReason   string          `json:"blockReason,omitempty"`
	SafetyRatings []*SafetyRating `json:"safetyRatings,omitempty"`
}

// SafetyRating is the per-category safety rating of content
type SafetyRating struct {
	Category    string `json:"category"`
	Probability string `json:"probability"`
	Blocked     bool   `json:"blocked,omitempty"`
}

// UsageMetadata reports token counts for a generation request
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount,omitempty"`
	CandidatesTokenCount int `json:"candidatesTokenCount,omitempty"`
	TotalTokenCount      int `json:"totalTokenCount,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// FINISH REASON CONSTANTS

const (
	FinishReasonStop       = "STOP"
	FinishReasonMaxTokens  = "MAX_TOKENS"
	FinishReasonSafety     = "SAFETY"
	FinishReasonRecitation = "RECITATION"
	FinishReasonOther      = "OTHER"
)

///////////////////////////////////////////////////////////////////////////////
// MODELS

// Model is the model resource returned by GET models/{model} and in the
// list response
type Model struct {
	Name                       string   `json:"name"` // "models/{model}"
	BaseModelID                string   `json:"baseModelId,omitempty"`
	Version                    string   `json:"version,omitempty"`
	DisplayName                string   `json:"displayName,omitempty"`
	Description                string   `json:"description,omitempty"`
	InputTokenLimit            int      `json:"inputTokenLimit,omitempty"`
	OutputTokenLimit           int      `json:"outputTokenLimit,omitempty"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods,omitempty"`
}

// ListModelsResponse is returned by GET /models
type ListModelsResponse struct {
	Models        []*Model `json:"models"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// ERROR RESPONSE

// ErrorResponse is the error body returned by both backends
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// NewTextPart creates a Part carrying text
func NewTextPart(text string) *Part {
	return &Part{Text: text}
}

// NewInlineDataPart creates a Part carrying inline binary data
func NewInlineDataPart(mimeType, base64Data string) *Part {
	return &Part{
		InlineData: &InlineData{
			MimeType: mimeType,
			Data:     base64Data,
		},
	}
}

// NewTextContent creates a Content with a single text Part
func NewTextContent(role, text string) *Content {
	return &Content{
		Role:  role,
		Parts: []*Part{NewTextPart(text)},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ID returns the model name without the "models/" resource prefix
func (m *Model) ID() string {
	return strings.TrimPrefix(m.Name, "models/")
}

// Text returns the concatenated text parts of the first candidate
func (r *GenerateResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	candidate := r.Candidates[0]
	if candidate.Content == nil {
		return ""
	}
	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}
	return text
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r GenerateRequest) String() string {
	return types.Stringify(r)
}

func (r GenerateResponse) String() string {
	return types.Stringify(r)
}

func (m Model) String() string {
	return types.Stringify(m)
}
