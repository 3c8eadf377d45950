package zombiezen

import (
	"path/filepath"
	"testing"

	sent "github.com/revelaction/textform/sentence"
)

func testStore(t *testing.T) *CorpusStore {
	t.Helper()
	pool, err := NewPool(filepath.Join(t.TempDir(), "corpus.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { pool.Close() })

	if err := CreateCorpusTables(pool); err != nil {
		t.Fatal(err)
	}
	return NewCorpusStore(pool)
}

func TestCorpusStoreRoundTrip(t *testing.T) {
	store := testStore(t)

	want := []sent.Sentence{
		{
			DocId: "doc1",
			Text:  "Dogs bark",
			Tokens: []sent.Token{
				{Word: "Dogs", Start: 0, End: 3, Head: 1},
				{Word: "bark", Start: 5, End: 8, Head: sent.NoHead},
			},
		},
	}
	if err := store.Write("doc1", want); err != nil {
		t.Fatal(err)
	}
	if err := store.Write("doc2", want); err != nil {
		t.Fatal(err)
	}

	docs, err := store.Docs()
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 || docs[0] != "doc1" || docs[1] != "doc2" {
		t.Fatalf("unexpected docs: %v", docs)
	}

	got, err := store.Sentences("doc1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(got))
	}
	if got[0].Text != "Dogs bark" {
		t.Errorf("unexpected text: %q", got[0].Text)
	}
	if got[0].Tokens[1].Head != sent.NoHead {
		t.Errorf("head sentinel did not round-trip: %d", got[0].Tokens[1].Head)
	}
}

func TestCorpusStoreMissingDoc(t *testing.T) {
	store := testStore(t)
	if _, err := store.Sentences("nope"); err == nil {
		t.Fatal("expected error for missing doc")
	}
}

func TestCorpusStoreDuplicateDoc(t *testing.T) {
	store := testStore(t)

	sentences := []sent.Sentence{{Text: "x", Tokens: []sent.Token{{Word: "x", Head: sent.NoHead}}}}
	if err := store.Write("doc1", sentences); err != nil {
		t.Fatal(err)
	}
	if err := store.Write("doc1", sentences); err == nil {
		t.Fatal("expected unique constraint error on duplicate doc id")
	}
}
