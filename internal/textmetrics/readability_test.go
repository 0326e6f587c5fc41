package textmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sentence(words ...string) Sentence {
	s := Sentence{}
	for _, w := range words {
		s.Tokens = append(s.Tokens, Token{Text: w, Tag: "NN", POS: POSOther})
	}
	return s
}

func tagged(s Sentence, index int, tag string) Sentence {
	s.Tokens[index].Tag = tag
	s.Tokens[index].POS = Classify(tag)
	return s
}

func TestComputeReadabilityEmpty(t *testing.T) {
	r := ComputeReadability(nil)
	assert.Equal(t, Readability{}, r)
}

func TestComputeReadabilitySimpleSentence(t *testing.T) {
	r := ComputeReadability([]Sentence{sentence("The", "cat", "sat")})

	assert.Equal(t, 3, r.WordCount)
	assert.Equal(t, 1, r.SentenceCount)
	assert.Equal(t, 0, r.ComplexWordCount)
	assert.Equal(t, 3.0, r.AvgSentenceLength)
	assert.Equal(t, 3.0, r.AvgNumberOfWordsPerSentence)
	assert.Equal(t, 0.0, r.PercentageOfComplexWords)
	assert.InDelta(t, 1.2, r.FogIndex, 1e-12)
	assert.Equal(t, 1.0, r.SyllablePerWord)
	assert.Equal(t, 3.0, r.AvgWordLength)
}

func TestComputeReadabilityComplexWords(t *testing.T) {
	s := sentence("Running", "and", "jumping", "are", "fun")
	s = tagged(s, 0, "VBG")
	s = tagged(s, 2, "VBG")

	r := ComputeReadability([]Sentence{s})

	assert.Equal(t, 2, r.ComplexWordCount)
	assert.Equal(t, 40.0, r.PercentageOfComplexWords)
	assert.InDelta(t, 18.0, r.FogIndex, 1e-12)

	simple := ComputeReadability([]Sentence{sentence("Running", "and", "jumping", "are", "fun")})
	assert.Greater(t, r.FogIndex, simple.FogIndex)
}

func TestComputeReadabilityTagFolding(t *testing.T) {
	s := sentence("She", "had", "finished", "it", "quickly")
	s = tagged(s, 0, "PRP")
	s = tagged(s, 1, "VBD")
	s = tagged(s, 2, "VBN")
	s = tagged(s, 3, "PRP")
	s = tagged(s, 4, "RB")

	r := ComputeReadability([]Sentence{s})

	assert.Equal(t, 1, r.ComplexWordCount)
	assert.Equal(t, 2, r.PersonalPronouns)
	assert.Equal(t, 20.0, r.PercentageOfComplexWords)
}

func TestComputeReadabilityMultipleSentences(t *testing.T) {
	r := ComputeReadability([]Sentence{
		sentence("One", "two"),
		sentence("three", "four", "five", "six"),
	})

	assert.Equal(t, 6, r.WordCount)
	assert.Equal(t, 2, r.SentenceCount)
	assert.Equal(t, 3.0, r.AvgSentenceLength)
	assert.Equal(t, 3.0, r.AvgNumberOfWordsPerSentence)
	assert.InDelta(t, 22.0/6.0, r.AvgWordLength, 1e-12)
}

func TestComputeReadabilityCountsRunes(t *testing.T) {
	r := ComputeReadability([]Sentence{sentence("naïve", "café")})
	assert.Equal(t, 9, r.Characters)
	assert.Equal(t, 4.5, r.AvgWordLength)
}

func TestFogIndexIdentity(t *testing.T) {
	pairs := [][2]float64{{0, 0}, {3, 0}, {5, 40}, {17.25, 12.5}, {1.0 / 3.0, 100.0 / 7.0}}
	for _, p := range pairs {
		assert.Equal(t, 0.4*(p[0]+p[1]), FogIndex(p[0], p[1]))
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		tag  string
		want POS
	}{
		{"VBG", POSGerund},
		{"VBN", POSPastParticiple},
		{"PRP", POSPersonalPronoun},
		{"PRP$", POSOther},
		{"VBD", POSOther},
		{"NN", POSOther},
		{"", POSOther},
	}

	for _, tt := range tests {
		if got := Classify(tt.tag); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}
