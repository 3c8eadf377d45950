package format

import (
	sent "github.com/revelaction/textform/sentence"
)

// English tokenizes raw English text, one sentence per line, by running two
// fixed rewrite tables before whitespace tokenization: a preprocessing pass
// that normalizes Unicode punctuation to ASCII, then a Penn Treebank style
// segmentation pass adapted from
// https://www.cis.upenn.edu/~treebank/tokenizer.sed
// by Robert MacIntyre, University of Pennsylvania, late 1995.
type English struct {
	Tokenized
}

func NewEnglish() *English {
	return &English{}
}

var _ Codec = (*English)(nil)

func (e *English) Parse(docId, record string) (*sent.Sentence, error) {
	rewritten := preprocTable.Apply(record)
	rewritten = ptbTable.Apply(rewritten)
	return e.Tokenized.Parse(docId, rewritten)
}

// preprocTable normalizes punctuation, bracket and quote variants to ASCII
// and deletes decorative bullet and separator characters.
var preprocTable = Table{
	// Punctuation.
	NewRule("’", "'"),
	NewRule("…", "..."),
	NewRule("---", "--"),
	NewRule("—", "--"),
	NewRule("–", "--"),
	NewRule("，", ","),
	NewRule("。", "."),
	NewRule("！", "!"),
	NewRule("？", "?"),
	NewRule("：", ":"),
	NewRule("；", ";"),
	NewRule("＆", "&"),

	// Brackets.
	NewRule(`\[`, "("),
	NewRule(`]`, ")"),
	NewRule(`{`, "("),
	NewRule(`}`, ")"),
	NewRule("【", "("),
	NewRule("】", ")"),
	NewRule("（", "("),
	NewRule("）", ")"),

	// Quotation marks.
	NewRule(`"`, `"`),
	NewRule("″", `"`),
	NewRule("“", `"`),
	NewRule("„", `"`),
	NewRule("‵‵", `"`),
	NewRule("”", `"`),
	NewRule("’", `"`),
	NewRule("‘", `"`),
	NewRule("′′", `"`),
	NewRule("‹", `"`),
	NewRule("›", `"`),
	NewRule("«", `"`),
	NewRule("»", `"`),

	// Discarded punctuation that breaks sentences.
	NewRule(`\|`, ""),
	NewRule("·", ""),
	NewRule("•", ""),
	NewRule("●", ""),
	NewRule("▪", ""),
	NewRule("■", ""),
	NewRule("□", ""),
	NewRule("❑", ""),
	NewRule("◆", ""),
	NewRule("★", ""),
	NewRule("＊", ""),
	NewRule("♦", ""),
}

// ptbTable is the Penn Treebank segmentation pass. Rule order is a hard
// correctness requirement: every rule assumes the text shape produced by
// the rules before it. Note the second `\]` rule can never match; the
// table is kept as inherited, quirks included.
var ptbTable = Table{
	// attempt to get correct directional quotes
	NewRule(`^"`, "`` "),
	NewRule(`([ \([{<])"`, "${1} `` "),
	// close quotes handled at end

	NewRule(`\.\.\.`, " ... "),
	NewRule(`[,;:@#$%&]`, " ${0} "),

	// Assume sentence tokenization has been done first, so split FINAL
	// periods only.
	NewRule(`([^.])(\.)([\]\)}>"']*)[ ]*$`, "${1} ${2}${3} "),
	// however, we may as well split ALL question marks and exclamation
	// points, since they shouldn't have the abbrev.-marker ambiguity
	// problem
	NewRule(`[?!]`, " ${0} "),

	// parentheses, brackets, etc.
	NewRule(`[\]\[\(\){}<>]`, " ${0} "),

	// Like Adwait Ratnaparkhi's MXPOST, we use the parsed-file version of
	// these symbols.
	NewRule(`\(`, "-LRB-"),
	NewRule(`\)`, "-RRB-"),
	NewRule(`\]`, "-LSB-"),
	NewRule(`\]`, "-RSB-"),
	NewRule(`{`, "-LCB-"),
	NewRule(`}`, "-RCB-"),

	NewRule(`--`, " -- "),

	// First off, add a space to the beginning and end of each line, to
	// reduce necessary number of regexps.
	NewRule(`$`, " "),
	NewRule(`^`, " "),

	NewRule(`"`, " '' "),
	// possessive or close-single-quote
	NewRule(`([^'])' `, "${1} ' "),
	// as in it's, I'm, we'd
	NewRule(`'([sSmMdD]) `, " '${1} "),
	NewRule(`'ll `, " 'll "),
	NewRule(`'re `, " 're "),
	NewRule(`'ve `, " 've "),
	NewRule(`n't `, " n't "),
	NewRule(`'LL `, " 'LL "),
	NewRule(`'RE `, " 'RE "),
	NewRule(`'VE `, " 'VE "),
	NewRule(`N'T `, " N'T "),

	NewRule(` ([Cc])annot `, " ${1}an not "),
	NewRule(` ([Dd])'ye `, " ${1}' ye "),
	NewRule(` ([Gg])imme `, " ${1}im me "),
	NewRule(` ([Gg])onna `, " ${1}on na "),
	NewRule(` ([Gg])otta `, " ${1}ot ta "),
	NewRule(` ([Ll])emme `, " ${1}em me "),
	NewRule(` ([Mm])ore'n `, " ${1}ore 'n "),
	NewRule(` '([Tt])is `, " '${1} is "),
	NewRule(` '([Tt])was `, " '${1} was "),
	NewRule(` ([Ww])anna `, " ${1}an na "),
	NewRule(` ([Ww])haddya `, " ${1}ha dd ya "),
	NewRule(` ([Ww])hatcha `, " ${1}ha t cha "),

	// clean out extra spaces
	NewRule(`  *`, " "),
	NewRule(`^ *`, ""),
}
