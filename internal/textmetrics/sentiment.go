package textmetrics

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/lexicon.yaml
var lexiconData []byte

const (
	// negationFactor scales the polarity of a negated word.
	negationFactor = -0.5
	// negationWindow is how many unscored words a negation reaches across.
	negationWindow = 3
)

// Sentiment is the polarity and subjectivity of a text.
type Sentiment struct {
	Polarity     float64 // [-1, 1]
	Subjectivity float64 // [0, 1]
}

// Positive returns the polarity when it is above zero, else 0.
func (s Sentiment) Positive() float64 {
	if s.Polarity > 0 {
		return s.Polarity
	}
	return 0
}

// Negative returns the magnitude of the polarity when it is below zero, else 0.
func (s Sentiment) Negative() float64 {
	if s.Polarity < 0 {
		return -s.Polarity
	}
	return 0
}

type lexiconEntry struct {
	Polarity     float64 `yaml:"p"`
	Subjectivity float64 `yaml:"s"`
	Intensity    float64 `yaml:"i"`
}

func (e lexiconEntry) modifier() bool {
	return e.Intensity != 0 && e.Intensity != 1
}

type lexiconFile struct {
	Negations []string                `yaml:"negations"`
	Words     map[string]lexiconEntry `yaml:"words"`
}

// Lexicon scores words for polarity and subjectivity. It is read-only once
// loaded.
type Lexicon struct {
	words     map[string]lexiconEntry
	negations map[string]bool
}

// LoadLexicon parses a YAML lexicon.
func LoadLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	lex := &Lexicon{
		words:     make(map[string]lexiconEntry, len(f.Words)),
		negations: make(map[string]bool, len(f.Negations)),
	}
	for word, entry := range f.Words {
		lex.words[strings.ToLower(word)] = entry
	}
	for _, word := range f.Negations {
		lex.negations[strings.ToLower(word)] = true
	}
	return lex, nil
}

var loadDefaultLexicon = sync.OnceValues(func() (*Lexicon, error) {
	return LoadLexicon(lexiconData)
})

// DefaultLexicon returns the embedded English lexicon, parsing it on first use.
func DefaultLexicon() *Lexicon {
	lex, err := loadDefaultLexicon()
	if err != nil {
		panic(fmt.Sprintf("textmetrics: embedded lexicon: %v", err))
	}
	return lex
}

// Len returns the number of scored and modifier words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Score averages the assessments of every lexicon word in the sentences.
// A preceding modifier multiplies a word's scores; a preceding negation
// flips and halves its polarity. Text without any lexicon word is neutral.
func (l *Lexicon) Score(sentences []Sentence) Sentiment {
	var polarity, subjectivity float64
	var n int

	for _, s := range sentences {
		intensity := 1.0
		negated := 0

		for _, tok := range s.Tokens {
			word := strings.ToLower(tok.Text)
			if l.negations[word] {
				negated = negationWindow
				continue
			}

			entry, ok := l.words[word]
			if !ok {
				if negated > 0 {
					negated--
				}
				continue
			}
			if entry.modifier() {
				intensity *= entry.Intensity
				continue
			}

			p := clamp(entry.Polarity*intensity, -1, 1)
			if negated > 0 {
				p *= negationFactor
			}
			polarity += p
			subjectivity += clamp(entry.Subjectivity*intensity, 0, 1)
			n++

			intensity = 1
			negated = 0
		}
	}

	if n == 0 {
		return Sentiment{}
	}
	return Sentiment{
		Polarity:     clamp(polarity/float64(n), -1, 1),
		Subjectivity: clamp(subjectivity/float64(n), 0, 1),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
