package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	sent "github.com/revelaction/textform/sentence"
)

const Defaultformat = "text"

var (
	Yellow    = "\033[0;33m"
	Teal      = "\033[1;36m"
	Gray      = "\033[0;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
)

// SupportedFormats lists the sentence output formats of the text renderer.
func SupportedFormats() []string {
	return []string{"text", "tokens"}
}

// Renderer writes sentences to a terminal, either as their reconstructed
// text or as a per-token column table.
type Renderer interface {
	Render(sentences []sent.Sentence)
}

// TextRenderer prints sentences as text lines or token tables.
type TextRenderer struct {
	W io.Writer

	HasColor bool

	// Format determines the output per sentence
	//
	// text: the reconstructed sentence text (and the note, if any)
	// tokens: one aligned row per token with offsets and annotations
	Format string
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w, Format: Defaultformat}
}

var _ Renderer = (*TextRenderer)(nil)

// NextFormat cycles to the next supported output format.
func (r *TextRenderer) NextFormat() {
	formats := SupportedFormats()
	for i, f := range formats {
		if f == r.Format {
			r.Format = formats[(i+1)%len(formats)]
			return
		}
	}
	r.Format = Defaultformat
}

func (r *TextRenderer) Render(sentences []sent.Sentence) {
	for i, s := range sentences {
		if r.Format == "tokens" {
			r.renderTokens(i, s)
			continue
		}
		r.renderText(i, s)
	}
}

func (r *TextRenderer) renderText(idx int, s sent.Sentence) {
	prefix := fmt.Sprintf("✍  %d ", idx)
	if r.HasColor {
		prefix = Yellow256 + prefix + Off
	}
	fmt.Fprintf(r.W, "%s%s\n", prefix, s.Text)
	if s.Note != "" {
		for _, line := range strings.Split(strings.TrimSuffix(s.Note, "\n"), "\n") {
			fmt.Fprintf(r.W, "   %s\n", line)
		}
	}
}

func (r *TextRenderer) renderTokens(idx int, s sent.Sentence) {
	r.renderText(idx, s)
	for i, token := range s.Tokens {
		head := "-"
		if token.HasHead() {
			head = strconv.Itoa(token.Head)
		}
		fmt.Fprintf(r.W, "%4d %20q [%d,%d] %8s %8s %6s %8s %s\n",
			i, token.Word, token.Start, token.End,
			token.Category, token.Tag, head, token.Label, attributeList(token))
	}
}

func attributeList(token sent.Token) string {
	if len(token.Attributes) == 0 {
		return ""
	}
	parts := make([]string, len(token.Attributes))
	for i, attr := range token.Attributes {
		parts[i] = attr.Name + "=" + attr.Value
	}
	return strings.Join(parts, "|")
}
