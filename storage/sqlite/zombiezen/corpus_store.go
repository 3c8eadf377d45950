package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	sent "github.com/revelaction/textform/sentence"
	"github.com/revelaction/textform/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// CorpusStore persists a corpus in SQLite: one row per document and one
// JSON-encoded row per sentence.
type CorpusStore struct {
	pool *sqlitex.Pool
}

var _ storage.CorpusRepository = (*CorpusStore)(nil)

func NewCorpusStore(pool *sqlitex.Pool) *CorpusStore {
	return &CorpusStore{pool: pool}
}

func (s *CorpusStore) Docs() ([]string, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var docs []string
	err = sqlitex.Execute(conn, "SELECT doc_id FROM docs ORDER BY doc_id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docs = append(docs, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *CorpusStore) Sentences(docId string) ([]sent.Sentence, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var sentences []sent.Sentence
	found := false

	err = sqlitex.Execute(conn,
		"SELECT s.data FROM sentences s JOIN docs d ON s.doc_rowid = d.id WHERE d.doc_id = ? ORDER BY s.id",
		&sqlitex.ExecOptions{
			Args: []interface{}{docId},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				found = true
				var sentence sent.Sentence
				if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &sentence); err != nil {
					return err
				}
				sentences = append(sentences, sentence)
				return nil
			},
		})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("doc not found: %s", docId)
	}

	return sentences, nil
}

func (s *CorpusStore) Write(docId string, sentences []sent.Sentence) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO docs (doc_id) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{docId},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}
	docRowId := conn.LastInsertRowID()

	for _, sentence := range sentences {
		data, marshalErr := json.Marshal(sentence)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_rowid, data) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docRowId, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
	}

	return nil
}
