package format

import (
	"bufio"
	"fmt"
	"io"

	sent "github.com/revelaction/textform/sentence"
)

// ParseAll reads records from r until the stream is exhausted and parses
// each with the codec. Records that yield no sentence are dropped. A parse
// error aborts the whole conversion.
func ParseAll(c Codec, r io.Reader, docId string) ([]sent.Sentence, error) {
	br := bufio.NewReader(r)

	var sentences []sent.Sentence
	for {
		record, more := c.ReadRecord(br)
		if !more {
			return sentences, nil
		}
		s, err := c.Parse(docId, record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(sentences)+1, err)
		}
		if s != nil {
			sentences = append(sentences, *s)
		}
	}
}

// WriteAll serializes every sentence with the codec and writes the records
// to w in order.
func WriteAll(c Codec, w io.Writer, sentences []sent.Sentence) error {
	for _, s := range sentences {
		_, record := c.Serialize(&s)
		if _, err := io.WriteString(w, record); err != nil {
			return err
		}
	}
	return nil
}
