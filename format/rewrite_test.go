package format

import "testing"

func TestRuleBackreference(t *testing.T) {
	rule := NewRule(`(\w+)-(\w+)`, "${2}-${1}")
	got := rule.re.ReplaceAllString("ab-cd ef-gh", rule.template)
	if got != "cd-ab gh-ef" {
		t.Errorf("got %q", got)
	}
}

func TestRuleWholeMatch(t *testing.T) {
	table := Table{NewRule(`[,;]`, " ${0} ")}
	got := table.Apply("a,b;c")
	if got != "a , b ; c" {
		t.Errorf("got %q", got)
	}
}

func TestTableOrderIsCumulative(t *testing.T) {
	// The second rule operates on the output of the first, not on the
	// original input.
	table := Table{
		NewRule("a", "b"),
		NewRule("b", "c"),
	}
	if got := table.Apply("a"); got != "c" {
		t.Errorf("got %q, want c", got)
	}

	reversed := Table{
		NewRule("b", "c"),
		NewRule("a", "b"),
	}
	if got := reversed.Apply("a"); got != "b" {
		t.Errorf("got %q, want b", got)
	}
}

func TestTableApplyAnchors(t *testing.T) {
	table := Table{
		NewRule(`$`, " "),
		NewRule(`^`, " "),
		NewRule(`  *`, " "),
		NewRule(`^ *`, ""),
	}
	if got := table.Apply("x   y"); got != "x y " {
		t.Errorf("got %q", got)
	}
}
