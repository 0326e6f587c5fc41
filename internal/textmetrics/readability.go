package textmetrics

import "unicode/utf8"

// fogWeight is the Gunning Fog Index scale factor.
const fogWeight = 0.4

// Readability holds the counts and ratios derived from tagged sentences.
type Readability struct {
	WordCount                   int
	SentenceCount               int
	ComplexWordCount            int
	PersonalPronouns            int
	Syllables                   int
	Characters                  int
	AvgSentenceLength           float64
	AvgNumberOfWordsPerSentence float64
	PercentageOfComplexWords    float64
	FogIndex                    float64
	SyllablePerWord             float64
	AvgWordLength               float64
}

// ComputeReadability aggregates tagged sentences. Every ratio goes through
// ratio, so empty input yields zeros rather than NaN.
func ComputeReadability(sentences []Sentence) Readability {
	r := Readability{SentenceCount: len(sentences)}

	var sentenceLengths int
	for _, s := range sentences {
		sentenceLengths += len(s.Tokens)
		for _, tok := range s.Tokens {
			r.WordCount++
			r.Characters += utf8.RuneCountInString(tok.Text)
			r.Syllables += Syllables(tok.Text)

			switch {
			case tok.POS.Complex():
				r.ComplexWordCount++
			case tok.POS == POSPersonalPronoun:
				r.PersonalPronouns++
			}
		}
	}

	r.AvgSentenceLength = ratio(float64(sentenceLengths), float64(r.SentenceCount))
	r.AvgNumberOfWordsPerSentence = ratio(float64(r.WordCount), float64(r.SentenceCount))
	r.PercentageOfComplexWords = 100 * ratio(float64(r.ComplexWordCount), float64(r.WordCount))
	r.FogIndex = FogIndex(r.AvgNumberOfWordsPerSentence, r.PercentageOfComplexWords)
	r.SyllablePerWord = ratio(float64(r.Syllables), float64(r.WordCount))
	r.AvgWordLength = ratio(float64(r.Characters), float64(r.WordCount))

	return r
}

// FogIndex is the Gunning Fog formula over words per sentence and the
// percentage of complex words.
func FogIndex(wordsPerSentence, percentComplex float64) float64 {
	return fogWeight * (wordsPerSentence + percentComplex)
}

// ratio divides n by d, returning 0 when d is 0.
func ratio(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}
