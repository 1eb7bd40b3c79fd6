package gemini

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Attachment is media (typically an image) to be sent alongside a prompt
type Attachment struct {
	filename string
	data     []byte
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ReadAttachment returns an attachment from a reader object.
// It is the responsibility of the caller to close the reader.
func ReadAttachment(r io.Reader) (*Attachment, error) {
	var filename string
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrBadParameter.With("empty attachment")
	}
	if f, ok := r.(*os.File); ok {
		filename = f.Name()
	}
	return &Attachment{filename: filename, data: data}, nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (a *Attachment) MarshalJSON() ([]byte, error) {
	var j struct {
		Filename string `json:"filename,omitempty"`
		Type     string `json:"type"`
		Bytes    uint64 `json:"bytes"`
	}
	j.Filename = a.filename
	j.Type = a.Type()
	j.Bytes = uint64(len(a.data))
	return json.Marshal(j)
}

func (a *Attachment) String() string {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) Data() []byte {
	return a.data
}

// Base64 returns the attachment data encoded for the wire
func (a *Attachment) Base64() string {
	return base64.StdEncoding.EncodeToString(a.data)
}

func (a *Attachment) Type() string {
	// Mimetype based on content
	mimetype := http.DetectContentType(a.data)
	if mimetype == "application/octet-stream" && a.filename != "" {
		// Detect mimetype from extension
		mimetype = mime.TypeByExtension(filepath.Ext(a.filename))
	}
	return mimetype
}
