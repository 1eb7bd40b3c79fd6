package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"

	// Packages
	schema "github.com/docloom/go-gemini/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// MOCK API SERVER

// mockAPI simulates the generateContent REST surface for tests
type mockAPI struct {
	Server *httptest.Server

	// Canned response fields
	Text   string     // text of the single candidate
	Tokens int        // totalTokenCount reported in usage metadata
	Pages  [][]string // model names returned per page by the list call
	Status int        // non-zero forces an error response with this code

	// Captures of the most recent request
	LastMethod string
	LastPath   string
	LastQuery  url.Values
	LastHeader http.Header
	LastBody   map[string]any
}

func newMockAPI() *mockAPI {
	m := &mockAPI{Text: "ok", Tokens: 3}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *mockAPI) Close() {
	m.Server.Close()
}

func (m *mockAPI) URL() string {
	return m.Server.URL
}

func (m *mockAPI) handle(w http.ResponseWriter, r *http.Request) {
	// Capture the request
	m.LastMethod = r.Method
	m.LastPath = r.URL.Path
	m.LastQuery = r.URL.Query()
	m.LastHeader = r.Header.Clone()
	m.LastBody = nil
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		m.LastBody = body
	}

	// Forced error response
	if m.Status != 0 {
		var response schema.ErrorResponse
		response.Error.Code = m.Status
		response.Error.Message = http.StatusText(m.Status)
		response.Error.Status = "ERROR"
		writeJSON(w, m.Status, response)
		return
	}

	// Model listing with pageToken pagination
	if r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/models") {
		page := 0
		if token := r.URL.Query().Get("pageToken"); token != "" {
			page, _ = strconv.Atoi(token)
		}
		var response schema.ListModelsResponse
		if page < len(m.Pages) {
			for _, name := range m.Pages[page] {
				response.Models = append(response.Models, &schema.Model{Name: "models/" + name})
			}
		}
		if page+1 < len(m.Pages) {
			response.NextPageToken = strconv.Itoa(page + 1)
		}
		writeJSON(w, http.StatusOK, response)
		return
	}

	// Model metadata
	if r.Method == http.MethodGet {
		name := r.URL.Path[strings.LastIndexByte(r.URL.Path, '/')+1:]
		writeJSON(w, http.StatusOK, schema.Model{
			Name:        "models/" + name,
			DisplayName: name,
		})
		return
	}

	// generateContent
	writeJSON(w, http.StatusOK, schema.GenerateResponse{
		Candidates: []*schema.Candidate{{
			Content:      schema.NewTextContent(schema.RoleModel, m.Text),
			FinishReason: schema.FinishReasonStop,
		}},
		UsageMetadata: &schema.UsageMetadata{
			PromptTokenCount:     2,
			CandidatesTokenCount: 1,
			TotalTokenCount:      m.Tokens,
		},
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
