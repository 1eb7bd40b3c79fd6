package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	schema "github.com/docloom/go-gemini/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// RESPONSE TESTS

func Test_response_text(t *testing.T) {
	assert := assert.New(t)

	var response *schema.GenerateResponse
	assert.Equal("", response.Text())
	assert.Equal("", (&schema.GenerateResponse{}).Text())
	assert.Equal("", (&schema.GenerateResponse{
		Candidates: []*schema.Candidate{{}},
	}).Text())

	// Text parts of the first candidate are concatenated in order
	response = &schema.GenerateResponse{
		Candidates: []*schema.Candidate{
			{Content: &schema.Content{
				Role: schema.RoleModel,
				Parts: []*schema.Part{
					schema.NewTextPart("The capital "),
					schema.NewTextPart("is Paris"),
				},
			}},
			{Content: schema.NewTextContent(schema.RoleModel, "ignored")},
		},
	}
	assert.Equal("The capital is Paris", response.Text())
}

func Test_response_decode(t *testing.T) {
	assert := assert.New(t)

	data := `{
		"candidates": [
			{
				"content": {"parts": [{"text": "Paris"}], "role": "model"},
				"finishReason": "STOP",
				"index": 0
			}
		],
		"usageMetadata": {"promptTokenCount": 8, "candidatesTokenCount": 1, "totalTokenCount": 9},
		"modelVersion": "gemini-2.0-flash"
	}`

	var response schema.GenerateResponse
	assert.NoError(json.Unmarshal([]byte(data), &response))
	assert.Equal("Paris", response.Text())
	assert.Equal(schema.FinishReasonStop, response.Candidates[0].FinishReason)
	assert.Equal(9, response.UsageMetadata.TotalTokenCount)
	assert.Equal("gemini-2.0-flash", response.ModelVersion)
}

func Test_model_id(t *testing.T) {
	assert := assert.New(t)

	model := &schema.Model{Name: "models/gemini-2.0-flash"}
	assert.Equal("gemini-2.0-flash", model.ID())

	// Names without the resource prefix pass through
	model = &schema.Model{Name: "gemini-2.0-flash"}
	assert.Equal("gemini-2.0-flash", model.ID())
}
