// Package format converts between raw corpus records and sentences.
//
// A record is the raw text unit holding one sentence's worth of input: for
// the tabular CoNLL format all lines up to a blank line, for the line
// oriented formats exactly one line. Each codec knows how to cut records
// out of a stream, parse a record into a sentence and serialize a sentence
// back into a record.
package format

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	sent "github.com/revelaction/textform/sentence"
)

// Options configure the field encoding transforms of the CoNLL codec.
// The other codecs ignore them.
type Options struct {
	// JoinCategoryToPos folds the coarse category into the tag on read
	// (tag becomes category + "++" + tag) and splits it again on write.
	JoinCategoryToPos bool

	// AddPosAsAttribute mirrors the tag into a synthetic trailing "fPOS"
	// morphology attribute on read and strips it again on write.
	AddPosAsAttribute bool
}

// Codec converts between records of one document format and sentences.
// Codecs hold no mutable state across calls and are safe for concurrent
// use, provided the stream passed to ReadRecord is not shared.
type Codec interface {
	// ReadRecord cuts the next record out of r. The returned bool is
	// false only when the stream is exhausted and no record text was
	// accumulated.
	ReadRecord(r *bufio.Reader) (string, bool)

	// Parse converts one record into a sentence keyed by docId. A nil
	// sentence with nil error means the record yields nothing (e.g. a
	// blank line) and is silently dropped.
	Parse(docId, record string) (*sent.Sentence, error)

	// Serialize converts a sentence back into record text, returning the
	// document id and the record.
	Serialize(s *sent.Sentence) (docId, record string)
}

// codecs maps a format name to its factory. Populated statically; the set
// of formats is fixed.
var codecs = map[string]func(Options) Codec{
	"conll-sentence":   func(o Options) Codec { return NewCoNLL(o) },
	"tokenized-text":   func(o Options) Codec { return NewTokenized() },
	"untokenized-text": func(o Options) Codec { return NewUntokenized() },
	"english-text":     func(o Options) Codec { return NewEnglish() },
}

// New returns a codec for the given format name.
func New(name string, opts Options) (Codec, error) {
	factory, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (known: %s)", name, strings.Join(Names(), ", "))
	}
	return factory(opts), nil
}

// Names returns the known format names, sorted.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// readLine reads one newline-terminated line from r, without the newline.
// A final line missing its newline still counts as a line; ok is false
// only at end of stream with nothing read.
func readLine(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSuffix(line, "\n"), true
}
