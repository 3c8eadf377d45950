package format

import (
	"strings"
	"testing"
)

func TestParseAllCoNLL(t *testing.T) {
	input := "# first\n" +
		"1\tDogs\t_\tNOUN\tNNS\t_\t0\troot\t_\t_\n" +
		"\n" +
		"\n" +
		"1\tcats\t_\tNOUN\tNNS\t_\t0\troot\t_\t_\n" +
		"\n"

	codec := NewCoNLL(Options{})
	sentences, err := ParseAll(codec, strings.NewReader(input), "doc")
	if err != nil {
		t.Fatal(err)
	}

	// The record between the two blank lines is empty and is dropped.
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	if sentences[0].Tokens[0].Word != "Dogs" {
		t.Errorf("unexpected first sentence: %+v", sentences[0])
	}
	if sentences[1].Tokens[0].Word != "cats" {
		t.Errorf("unexpected second sentence: %+v", sentences[1])
	}
	for _, s := range sentences {
		if s.DocId != "doc" {
			t.Errorf("expected doc id stamped, got %q", s.DocId)
		}
	}
}

func TestParseAllAbortsOnBadRecord(t *testing.T) {
	input := "1\tok\t_\t_\t_\t_\t0\troot\t_\t_\n" +
		"\n" +
		"7\tbad\t_\t_\t_\t_\t0\troot\t_\t_\n" +
		"\n"

	codec := NewCoNLL(Options{})
	if _, err := ParseAll(codec, strings.NewReader(input), "doc"); err == nil {
		t.Fatal("expected conversion to abort on invalid token id")
	}
}

func TestWriteAll(t *testing.T) {
	codec := NewTokenized()
	sentences, err := ParseAll(codec, strings.NewReader("a b\nc d\n"), "doc")
	if err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	if err := WriteAll(codec, &out, sentences); err != nil {
		t.Fatal(err)
	}
	if out.String() != "a b\nc d\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
}
