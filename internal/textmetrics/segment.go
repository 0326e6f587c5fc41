package textmetrics

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// splitSentences breaks text into sentences with prose's punkt segmenter.
func splitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return []string{text}
	}

	var sentences []string
	for _, s := range doc.Sentences() {
		if t := strings.TrimSpace(s.Text); t != "" {
			sentences = append(sentences, t)
		}
	}
	return sentences
}

// Segment splits text into sentences of tagged word tokens. Punctuation
// tokens, tokens that are empty once surrounding punctuation is stripped,
// and sentences left without any word are dropped.
func (a *Analyzer) Segment(text string) []Sentence {
	var sentences []Sentence
	for _, s := range splitSentences(text) {
		var tokens []Token
		for _, tw := range a.tagger.Tag(s) {
			word, ok := normalizeWord(tw.Text)
			if !ok {
				continue
			}
			tokens = append(tokens, Token{
				Text: word,
				Tag:  tw.Tag,
				POS:  Classify(tw.Tag),
			})
		}
		if len(tokens) == 0 {
			continue
		}
		sentences = append(sentences, Sentence{Text: s, Tokens: tokens})
	}
	return sentences
}

// normalizeWord strips surrounding punctuation and symbols from a token and
// reports whether anything word-like remains.
func normalizeWord(text string) (string, bool) {
	word := strings.TrimFunc(text, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r)
	})
	if word == "" {
		return "", false
	}
	if !strings.ContainsFunc(word, isWordRune) {
		return "", false
	}
	return word, true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
