package stat

import (
	"testing"

	sent "github.com/revelaction/textform/sentence"
)

func TestAggregate(t *testing.T) {
	hdl := NewHandler()
	hdl.Aggregate([]sent.Sentence{
		{Text: "a b", Tokens: []sent.Token{{Word: "a"}, {Word: "b"}}},
		{Text: "c d e f", Tokens: []sent.Token{{Word: "c"}, {Word: "d"}, {Word: "e"}, {Word: "f"}}},
		{Text: "#DUMMY#", Note: "#skip because token_size() > 100\n#x\n", Tokens: []sent.Token{{Word: "#DUMMY#"}}},
	})

	stats := hdl.Get()
	if stats.NumSentences != 3 {
		t.Errorf("expected 3 sentences, got %d", stats.NumSentences)
	}
	if stats.NumPlaceholders != 1 {
		t.Errorf("expected 1 placeholder, got %d", stats.NumPlaceholders)
	}
	if stats.NumTokens != 6 {
		t.Errorf("expected 6 tokens, got %d", stats.NumTokens)
	}
	if stats.TokensPerSentenceMean != 3 {
		t.Errorf("expected mean 3, got %d", stats.TokensPerSentenceMean)
	}
	if stats.TokensPerSentenceDis[2] != 1 || stats.TokensPerSentenceDis[4] != 1 {
		t.Errorf("unexpected distribution: %v", stats.TokensPerSentenceDis)
	}
}

func TestAggregateAccumulates(t *testing.T) {
	hdl := NewHandler()
	hdl.Aggregate([]sent.Sentence{{Tokens: []sent.Token{{Word: "a"}}}})
	hdl.Aggregate([]sent.Sentence{{Tokens: []sent.Token{{Word: "b"}, {Word: "c"}}}})

	stats := hdl.Get()
	if stats.NumSentences != 2 || stats.NumTokens != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
