package format

import (
	"bufio"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	sent "github.com/revelaction/textform/sentence"
)

// CoNLL reads and writes dependency annotated corpora in the CoNLL tabular
// format, one token per line, sentences separated by a blank line. See
// http://ilk.uvt.nl/conll/#dataformat
//
// Each line carries ten tab separated fields:
//
//	1  ID       token counter, starting at 1 for each new sentence
//	2  FORM     word form or punctuation symbol
//	3  LEMMA    lemma or stem (unused)
//	4  CPOSTAG  coarse-grained POS category
//	5  POSTAG   fine-grained POS tag
//	6  FEATS    morphological features, a1=v1|a2=v2|... or v1|v2|...
//	7  HEAD     head token ID, or 0 for no head
//	8  DEPREL   dependency relation to the head
//	9  PHEAD    projective head (unused)
//	10 PDEPREL  relation to the projective head (unused)
//
// The reader is compatible with CoNLL-U: multiword token lines (hyphenated
// IDs like "2-4") are skipped and the last two fields are ignored either
// way. Comment lines starting with '#' accumulate into the sentence note.
type CoNLL struct {
	opts Options
}

const (
	fieldSeparator = "\t"
	minFields      = 8

	// tagJoinSeparator glues CPOSTAG to POSTAG when JoinCategoryToPos
	// is set.
	tagJoinSeparator = "++"

	// posAttribute is the synthetic attribute mirroring the POS tag when
	// AddPosAsAttribute is set.
	posAttribute = "fPOS"

	// attributeDefaultValue is assumed for FEATS entries without '=',
	// e.g. German CoNLL data.
	attributeDefaultValue = "on"
)

const (
	// maxTokens is the cut-off above which a sentence is replaced by the
	// placeholder instead of being converted.
	maxTokens = 100

	placeholderWord = "#DUMMY#"
)

// multiwordId matches CoNLL-U multiword token range markers like "2-4".
var multiwordId = regexp.MustCompile(`^[0-9]+-[0-9]+$`)

func NewCoNLL(opts Options) *CoNLL {
	return &CoNLL{opts: opts}
}

var _ Codec = (*CoNLL)(nil)

// ReadRecord accumulates lines up to the first blank line or end of stream.
// The blank line is consumed but not part of the record.
func (c *CoNLL) ReadRecord(r *bufio.Reader) (string, bool) {
	var record strings.Builder
	line, ok := readLine(r)
	for ok && line != "" {
		record.WriteString(line)
		record.WriteByte('\n')
		line, ok = readLine(r)
	}
	return record.String(), ok || record.Len() > 0
}

// Parse converts one tabular record into a sentence. Records with more
// than maxTokens tokens are replaced by a placeholder sentence whose note
// records the reason and the dropped text; records with only comments
// yield a placeholder carrying the comments; records with neither tokens
// nor comments yield nil.
func (c *CoNLL) Parse(docId, record string) (*sent.Sentence, error) {
	var text strings.Builder
	var comments strings.Builder
	var tokens []sent.Token

	expectedId := 1
	for _, line := range strings.Split(record, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, fieldSeparator)

		// Comment lines accumulate into the note.
		if strings.HasPrefix(fields[0], "#") {
			comments.WriteString(fields[0])
			comments.WriteByte('\n')
			continue
		}

		// Skip CoNLL-U multiword token lines.
		if multiwordId.MatchString(fields[0]) {
			continue
		}

		// Canonicalize the '_' placeholder to empty in optional fields.
		for j := 2; j < len(fields); j++ {
			if fields[j] == "_" {
				fields[j] = ""
			}
		}

		if len(fields) < minFields {
			return nil, fmt.Errorf("conll: every line has to have at least %d tab separated fields, got %d: %q", minFields, len(fields), line)
		}

		id, _ := strconv.Atoi(fields[0])
		if id != expectedId {
			return nil, fmt.Errorf("conll: token ids start at 1 and increase by 1 per token, expected %d got %q", expectedId, fields[0])
		}
		expectedId++

		word := fields[1]
		category := fields[3]
		tag := fields[4]
		attributes := fields[5]
		head, _ := strconv.Atoi(fields[6])
		label := fields[7]

		if text.Len() > 0 {
			text.WriteByte(' ')
		}
		start := text.Len()
		text.WriteString(word)

		token := sent.NewToken(word, start)
		if head > 0 {
			token.Head = head - 1
		}
		token.Tag = tag
		token.Category = category
		token.Label = label
		if attributes != "" {
			token.Attributes = parseAttributes(attributes, word)
		}
		if c.opts.JoinCategoryToPos {
			joinCategoryToPos(&token)
		}
		if c.opts.AddPosAsAttribute {
			addPosAsAttribute(&token)
		}
		tokens = append(tokens, token)
	}

	switch {
	case len(tokens) > maxTokens:
		s := c.placeholderSentence(docId)
		s.Note = skipNote(text.String())
		return s, nil
	case len(tokens) > 0:
		return &sent.Sentence{DocId: docId, Text: text.String(), Tokens: tokens}, nil
	case comments.Len() > 0:
		// Comment-only record: keep the comments on a placeholder so the
		// record still round-trips.
		s := c.placeholderSentence(docId)
		s.Note = comments.String()
		return s, nil
	default:
		// Blank lines at the beginning of a file and the like.
		return nil, nil
	}
}

// Serialize converts a sentence back into a tabular record terminated by a
// blank line. A sentence carrying a note serializes as the note alone.
func (c *CoNLL) Serialize(s *sent.Sentence) (string, string) {
	if s.Note != "" {
		return s.DocId, s.Note + "\n"
	}

	lines := make([]string, 0, len(s.Tokens))
	for i, token := range s.Tokens {
		// token is a copy; the reverse transforms must not touch the
		// caller's sentence.
		if c.opts.JoinCategoryToPos {
			splitCategoryFromPos(&token)
		}
		if c.opts.AddPosAsAttribute {
			removePosFromAttributes(&token)
		}
		fields := []string{
			strconv.Itoa(i + 1),
			underscoreIfEmpty(token.Word),
			"_",
			underscoreIfEmpty(token.Category),
			underscoreIfEmpty(token.Tag),
			attributeString(token),
			strconv.Itoa(token.Head + 1),
			underscoreIfEmpty(token.Label),
			"_",
			"_",
		}
		lines = append(lines, strings.Join(fields, fieldSeparator))
	}
	return s.DocId, strings.Join(lines, "\n") + "\n\n"
}

// placeholderSentence builds the fixed one-token substitute emitted for
// oversized or comment-only records.
func (c *CoNLL) placeholderSentence(docId string) *sent.Sentence {
	token := sent.NewToken(placeholderWord, 0)
	token.Tag = "NN"
	token.Category = "NOUN"
	if c.opts.JoinCategoryToPos {
		joinCategoryToPos(&token)
	}
	if c.opts.AddPosAsAttribute {
		addPosAsAttribute(&token)
	}
	return &sent.Sentence{
		DocId:  docId,
		Text:   placeholderWord,
		Tokens: []sent.Token{token},
	}
}

// skipNote is the diagnostic note attached when a record exceeds maxTokens.
func skipNote(text string) string {
	return "#skip because token_size() > 100\n#" + text + "\n"
}

func underscoreIfEmpty(field string) string {
	if field == "" {
		return "_"
	}
	return field
}

// parseAttributes splits a FEATS string of the form a1=v1|a2=v2|... or
// v1|v2|... into attributes. An entry with an empty value is invalid and
// dropped with a warning; an entry with an empty name but non-empty value
// is kept (a data-entry artifact seen in the wild).
func parseAttributes(attributes, word string) []sent.Attribute {
	var attrs []sent.Attribute
	for _, entry := range strings.Split(attributes, "|") {
		name, value, found := strings.Cut(entry, "=")
		if !found {
			value = attributeDefaultValue
		}
		if value == "" {
			slog.Warn("invalid attributes string", "attributes", attributes, "word", word)
			continue
		}
		attrs = append(attrs, sent.Attribute{Name: name, Value: value})
	}
	return attrs
}

// attributeString is the inverse of parseAttributes. Values equal to the
// default serialize as the bare name; an empty list serializes to "_".
func attributeString(token sent.Token) string {
	if len(token.Attributes) == 0 {
		return "_"
	}
	var b strings.Builder
	for i, attr := range token.Attributes {
		if i > 0 {
			b.WriteString("|")
		}
		b.WriteString(attr.Name)
		if attr.Value != attributeDefaultValue {
			b.WriteString("=")
			b.WriteString(attr.Value)
		}
	}
	return b.String()
}

func joinCategoryToPos(token *sent.Token) {
	token.Tag = token.Category + tagJoinSeparator + token.Tag
	token.Category = ""
}

func splitCategoryFromPos(token *sent.Token) {
	if idx := strings.Index(token.Tag, tagJoinSeparator); idx >= 0 {
		token.Category = token.Tag[:idx]
		token.Tag = token.Tag[idx+len(tagJoinSeparator):]
	}
}

func addPosAsAttribute(token *sent.Token) {
	if token.Tag != "" {
		token.Attributes = append(token.Attributes, sent.Attribute{Name: posAttribute, Value: token.Tag})
	}
}

// removePosFromAttributes drops the synthetic POS attribute again. It
// assumes the fPOS attribute, if present, is the last one.
func removePosFromAttributes(token *sent.Token) {
	if n := len(token.Attributes); n > 0 && token.Attributes[n-1].Name == posAttribute {
		token.Attributes = token.Attributes[:n-1]
	}
}
