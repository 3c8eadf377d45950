package format

import "regexp"

// Rule is a single rewrite step: a compiled pattern and an expansion
// template that may reference capture groups (${1}, ${2}, ...) or the whole
// match (${0}).
type Rule struct {
	re       *regexp.Regexp
	template string
}

// NewRule compiles pattern and pairs it with template. It panics on an
// invalid pattern; rule tables are fixed program data.
func NewRule(pattern, template string) Rule {
	return Rule{re: regexp.MustCompile(pattern), template: template}
}

// Table is an ordered list of rewrite rules. Order is significant: every
// rule operates on the accumulated output of the rules before it.
type Table []Rule

// Apply runs each rule in order as a global find-and-replace over text and
// returns the final result.
func (t Table) Apply(text string) string {
	for _, rule := range t {
		text = rule.re.ReplaceAllString(text, rule.template)
	}
	return text
}
