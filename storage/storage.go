package storage

import (
	sent "github.com/revelaction/textform/sentence"
)

// CorpusReader defines read operations for converted corpora.
type CorpusReader interface {
	// Docs returns the document ids present in the corpus, sorted.
	Docs() ([]string, error)

	// Sentences returns the sentences of a document in corpus order.
	Sentences(docId string) ([]sent.Sentence, error)
}

// CorpusWriter defines write operations for converted corpora.
type CorpusWriter interface {
	// Write persists the sentences of a document.
	Write(docId string, sentences []sent.Sentence) error
}

// CorpusRepository combines read and write operations.
type CorpusRepository interface {
	CorpusReader
	CorpusWriter
}
