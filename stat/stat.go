package stat

import (
	"strings"

	sent "github.com/revelaction/textform/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	NumPlaceholders       int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate folds the sentences into the running statistics. Placeholder
// sentences (skip notes) are counted separately, since their single dummy
// token says nothing about the underlying record.
func (h *Handler) Aggregate(sentences []sent.Sentence) {
	for _, sentence := range sentences {
		h.stats.NumSentences++
		if strings.HasPrefix(sentence.Note, "#skip because") {
			h.stats.NumPlaceholders++
			continue
		}
		h.stats.NumTokens += len(sentence.Tokens)
		h.stats.TokensPerSentenceDis[len(sentence.Tokens)]++
	}

	if counted := h.stats.NumSentences - h.stats.NumPlaceholders; counted > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / counted
	}
}
