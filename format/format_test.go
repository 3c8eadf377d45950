package format

import (
	"bufio"
	"strings"
	"testing"
)

func TestNewKnownFormats(t *testing.T) {
	for _, name := range []string{"conll-sentence", "tokenized-text", "untokenized-text", "english-text"} {
		codec, err := New(name, Options{})
		if err != nil {
			t.Fatalf("format %s: %v", name, err)
		}
		if codec == nil {
			t.Fatalf("format %s: nil codec", name)
		}
	}
}

func TestNewUnknownFormat(t *testing.T) {
	if _, err := New("klingon-text", Options{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 4 {
		t.Fatalf("expected 4 formats, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestConvertBetweenFormats(t *testing.T) {
	// english-text in, conll-sentence out: the full conversion pipeline.
	in, err := New("english-text", Options{})
	if err != nil {
		t.Fatal(err)
	}
	out, err := New("conll-sentence", Options{})
	if err != nil {
		t.Fatal(err)
	}

	r := bufio.NewReader(strings.NewReader("Dogs can't fly.\n"))
	record, more := in.ReadRecord(r)
	if !more {
		t.Fatal("expected a record")
	}

	s, err := in.Parse("doc", record)
	if err != nil {
		t.Fatal(err)
	}

	_, conll := out.Serialize(s)
	want := "1\tDogs\t_\t_\t_\t_\t0\t_\t_\t_\n" +
		"2\tca\t_\t_\t_\t_\t0\t_\t_\t_\n" +
		"3\tn't\t_\t_\t_\t_\t0\t_\t_\t_\n" +
		"4\tfly\t_\t_\t_\t_\t0\t_\t_\t_\n" +
		"5\t.\t_\t_\t_\t_\t0\t_\t_\t_\n\n"
	if conll != want {
		t.Errorf("conversion mismatch:\ngot  %q\nwant %q", conll, want)
	}
}
