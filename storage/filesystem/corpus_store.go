package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sent "github.com/revelaction/textform/sentence"
	"github.com/revelaction/textform/storage"
)

// CorpusStore persists a corpus as a directory of JSON files, one file per
// document, named <docId>.json.
type CorpusStore struct {
	root string
}

var _ storage.CorpusRepository = (*CorpusStore)(nil)

func NewCorpusStore(root string) (*CorpusStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("corpus dir not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus path is not a directory: %s", root)
	}
	return &CorpusStore{root: root}, nil
}

func (s *CorpusStore) Docs() ([]string, error) {
	files, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}

	docs := []string{}
	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}
		docs = append(docs, strings.TrimSuffix(file.Name(), ".json"))
	}
	sort.Strings(docs)

	return docs, nil
}

func (s *CorpusStore) Sentences(docId string) ([]sent.Sentence, error) {
	data, err := os.ReadFile(filepath.Join(s.root, docId+".json"))
	if err != nil {
		return nil, fmt.Errorf("doc not found: %s: %w", docId, err)
	}

	var sentences []sent.Sentence
	if err := json.Unmarshal(data, &sentences); err != nil {
		return nil, fmt.Errorf("JSON decoding error for doc %s: %w", docId, err)
	}

	return sentences, nil
}

func (s *CorpusStore) Write(docId string, sentences []sent.Sentence) error {
	data, err := json.Marshal(sentences)
	if err != nil {
		return err
	}

	path := filepath.Join(s.root, docId+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write doc %s: %w", docId, err)
	}

	return nil
}
