package format

import (
	"bufio"
	"strconv"
	"strings"

	sent "github.com/revelaction/textform/sentence"
)

// Tokenized reads text that is already tokenized: one sentence per line,
// tokens separated by single spaces.
type Tokenized struct{}

func NewTokenized() *Tokenized {
	return &Tokenized{}
}

var _ Codec = (*Tokenized)(nil)

// ReadRecord reads exactly one line.
func (t *Tokenized) ReadRecord(r *bufio.Reader) (string, bool) {
	return readLine(r)
}

// Parse splits the record on spaces, dropping empty pieces. Offsets index
// into the text rebuilt by joining the tokens with single spaces.
func (t *Tokenized) Parse(docId, record string) (*sent.Sentence, error) {
	var text strings.Builder
	var tokens []sent.Token
	for _, word := range strings.Split(record, " ") {
		if word == "" {
			continue
		}
		if text.Len() > 0 {
			text.WriteByte(' ')
		}
		start := text.Len()
		text.WriteString(word)
		tokens = append(tokens, sent.NewToken(word, start))
	}
	return textSentence(docId, text.String(), tokens), nil
}

// Serialize joins the tokens with spaces, appending _tag and _head suffixes
// where present, and terminates with one newline.
func (t *Tokenized) Serialize(s *sent.Sentence) (string, string) {
	var b strings.Builder
	for _, token := range s.Tokens {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(token.Word)
		if token.Tag != "" {
			b.WriteByte('_')
			b.WriteString(token.Tag)
		}
		if token.HasHead() {
			b.WriteByte('_')
			b.WriteString(strconv.Itoa(token.Head))
		}
	}
	b.WriteByte('\n')
	return s.DocId, b.String()
}

// Untokenized reads unsegmented text: one sentence per line, every Unicode
// codepoint of the line becoming one token. The sentence text is the line
// verbatim; tokens have no separators between them.
type Untokenized struct {
	Tokenized
}

func NewUntokenized() *Untokenized {
	return &Untokenized{}
}

var _ Codec = (*Untokenized)(nil)

func (u *Untokenized) Parse(docId, record string) (*sent.Sentence, error) {
	var tokens []sent.Token
	start := 0
	for _, r := range record {
		word := string(r)
		tokens = append(tokens, sent.NewToken(word, start))
		start += len(word)
	}
	return textSentence(docId, record, tokens), nil
}

// textSentence applies the shared post-processing of the text formats:
// oversized sentences become the placeholder, empty ones are dropped. The
// text formats' placeholder carries no tag or category.
func textSentence(docId, text string, tokens []sent.Token) *sent.Sentence {
	switch {
	case len(tokens) > maxTokens:
		return &sent.Sentence{
			DocId:  docId,
			Text:   placeholderWord,
			Note:   skipNote(text),
			Tokens: []sent.Token{sent.NewToken(placeholderWord, 0)},
		}
	case len(tokens) > 0:
		return &sent.Sentence{DocId: docId, Text: text, Tokens: tokens}
	default:
		return nil
	}
}
