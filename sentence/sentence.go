package sentence

// NoHead marks a token without a dependency head (a root token, or a token
// from a format that carries no dependency annotation).
const NoHead = -1

// Sentence is one converted sentence of a corpus document.
type Sentence struct {
	// DocId identifies the document this sentence belongs to.
	DocId string `json:"doc_id,omitempty"`

	// Text is the reconstructed sentence text the token offsets point into.
	Text string `json:"text"`

	// Note carries skip/comment annotations. A sentence with a non-empty
	// note serializes as the note alone, bypassing token serialization.
	Note string `json:"note,omitempty"`

	Tokens []Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and dependency metadata.
type Token struct {
	// The word or punctuation symbol
	Word string `json:"word"`

	// Start and End are byte offsets into the sentence Text, 0-based and
	// inclusive: End = Start + len(Word) - 1.
	Start int `json:"start"`
	End   int `json:"end"`

	// Coarse-grained POS category, empty if absent
	Category string `json:"category,omitempty"`

	// Fine-grained POS tag, empty if absent
	Tag string `json:"tag,omitempty"`

	// Dependency relation label, empty if absent
	Label string `json:"label,omitempty"`

	// Head is the 0-based index of the head token, or NoHead.
	Head int `json:"head"`

	// Morphological attributes, in insertion order
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Attribute is a single morphological name/value feature. The name may be
// empty (a data-entry artifact that is preserved); the value never is.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HasHead reports whether the token has a dependency head.
func (t Token) HasHead() bool {
	return t.Head != NoHead
}

// NewToken creates a token for word at the given start offset, with no head.
func NewToken(word string, start int) Token {
	return Token{
		Word:  word,
		Start: start,
		End:   start + len(word) - 1,
		Head:  NoHead,
	}
}
