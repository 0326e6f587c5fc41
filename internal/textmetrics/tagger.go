package textmetrics

import (
	"fmt"
	"sync"

	"github.com/jdkato/prose/v2"
)

// TaggedWord is one token of a sentence as produced by a Tagger.
type TaggedWord struct {
	Text string
	Tag  string
}

// Tagger tokenizes one sentence and assigns every token a Penn Treebank tag.
// Implementations must be deterministic and safe for concurrent use.
type Tagger interface {
	Tag(sentence string) []TaggedWord
}

// loadSharedModel loads the perceptron tagging model once per process. The
// model is never written after loading.
var loadSharedModel = sync.OnceValues(func() (*prose.Model, error) {
	doc, err := prose.NewDocument("",
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}
	return doc.Model, nil
})

// sharedModel returns the process-wide tagging model.
func sharedModel() *prose.Model {
	return mustModel(loadSharedModel)
}

// mustModel panics when the bundled model cannot be loaded; every later
// call reports the same failure instead of retrying.
func mustModel(load func() (*prose.Model, error)) *prose.Model {
	m, err := load()
	if err != nil {
		panic(fmt.Sprintf("textmetrics: tagging model: %v", err))
	}
	return m
}

// ProseTagger tags with prose's averaged perceptron model, trained on the
// Penn Treebank tagset.
type ProseTagger struct {
	model *prose.Model
}

// NewProseTagger returns a tagger backed by the process-wide model.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{model: sharedModel()}
}

// Tag tokenizes and tags sentence. Punctuation tokens are returned as well;
// callers decide what counts as a word.
func (t *ProseTagger) Tag(sentence string) []TaggedWord {
	m := t.model
	if m == nil {
		m = sharedModel()
	}

	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
		prose.UsingModel(m),
	)
	if err != nil {
		return nil
	}

	tokens := doc.Tokens()
	words := make([]TaggedWord, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, TaggedWord{Text: tok.Text, Tag: tok.Tag})
	}
	return words
}
