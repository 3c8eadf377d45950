package render

import (
	"bytes"
	"strings"
	"testing"

	sent "github.com/revelaction/textform/sentence"
)

func testSentence() sent.Sentence {
	return sent.Sentence{
		DocId: "doc1",
		Text:  "Dogs bark",
		Tokens: []sent.Token{
			{Word: "Dogs", Start: 0, End: 3, Category: "NOUN", Tag: "NNS", Label: "nsubj", Head: 1,
				Attributes: []sent.Attribute{{Name: "Number", Value: "Plur"}}},
			{Word: "bark", Start: 5, End: 8, Tag: "VBP", Label: "root", Head: sent.NoHead},
		},
	}
}

func TestTextRendererText(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	r.Render([]sent.Sentence{testSentence()})

	out := buf.String()
	if !strings.Contains(out, "Dogs bark") {
		t.Errorf("expected sentence text, got %q", out)
	}
	if strings.Contains(out, "NNS") {
		t.Errorf("text format should not print tags, got %q", out)
	}
}

func TestTextRendererTokens(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	r.Format = "tokens"
	r.Render([]sent.Sentence{testSentence()})

	out := buf.String()
	for _, want := range []string{"\"Dogs\"", "NOUN", "NNS", "nsubj", "Number=Plur", "[5,8]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in token table, got %q", want, out)
		}
	}
	// The root token has no head.
	if !strings.Contains(out, " - ") {
		t.Errorf("expected head placeholder for root, got %q", out)
	}
}

func TestTextRendererNote(t *testing.T) {
	s := sent.Sentence{
		Text:   "#DUMMY#",
		Note:   "#sent_id = 1\n",
		Tokens: []sent.Token{{Word: "#DUMMY#", Start: 0, End: 6, Head: sent.NoHead}},
	}

	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	r.Render([]sent.Sentence{s})

	if !strings.Contains(buf.String(), "#sent_id = 1") {
		t.Errorf("expected note printed, got %q", buf.String())
	}
}

func TestNextFormat(t *testing.T) {
	r := NewTextRenderer(nil)
	seen := map[string]bool{r.Format: true}
	for i := 0; i < len(SupportedFormats())-1; i++ {
		r.NextFormat()
		seen[r.Format] = true
	}
	if len(seen) != len(SupportedFormats()) {
		t.Errorf("NextFormat did not cycle all formats: %v", seen)
	}
	r.NextFormat()
	if r.Format != Defaultformat {
		t.Errorf("expected cycle back to %q, got %q", Defaultformat, r.Format)
	}
}
