package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/textform/sentence"
)

// JSONRenderer writes sentences as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the sentences as a JSON array.
func (r *JSONRenderer) Render(sentences []sent.Sentence) {
	json.NewEncoder(r.W).Encode(sentences)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
