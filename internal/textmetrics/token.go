package textmetrics

// POS is the part-of-speech category a token contributes to the metrics.
type POS int

const (
	// POSOther covers every tag that feeds no metric.
	POSOther POS = iota
	// POSGerund is a gerund or present participle (VBG).
	POSGerund
	// POSPastParticiple is a past participle (VBN).
	POSPastParticiple
	// POSPersonalPronoun is a personal pronoun (PRP).
	POSPersonalPronoun
)

func (p POS) String() string {
	switch p {
	case POSGerund:
		return "VBG"
	case POSPastParticiple:
		return "VBN"
	case POSPersonalPronoun:
		return "PRP"
	default:
		return "other"
	}
}

// Complex reports whether tokens of this category count as complex words.
func (p POS) Complex() bool {
	return p == POSGerund || p == POSPastParticiple
}

// Classify folds a Penn Treebank tag into a POS category.
func Classify(tag string) POS {
	switch tag {
	case "VBG":
		return POSGerund
	case "VBN":
		return POSPastParticiple
	case "PRP":
		return POSPersonalPronoun
	default:
		return POSOther
	}
}

// Token is a word of the article with its tag.
type Token struct {
	Text string // as written, surrounding punctuation stripped
	Tag  string // Penn Treebank tag from the tagger
	POS  POS
}

// Sentence is an ordered run of word tokens.
type Sentence struct {
	Text   string
	Tokens []Token
}
