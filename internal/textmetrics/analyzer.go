package textmetrics

import "sync"

// Analyzer runs the metrics pipeline. It holds only read-only resources and
// is safe for concurrent use.
type Analyzer struct {
	tagger  Tagger
	lexicon *Lexicon
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTagger replaces the default prose tagger.
func WithTagger(t Tagger) Option {
	return func(a *Analyzer) {
		a.tagger = t
	}
}

// WithLexicon replaces the embedded sentiment lexicon.
func WithLexicon(l *Lexicon) Option {
	return func(a *Analyzer) {
		a.lexicon = l
	}
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	if a.tagger == nil {
		a.tagger = NewProseTagger()
	}
	if a.lexicon == nil {
		a.lexicon = DefaultLexicon()
	}
	return a
}

// Analysis is the full result of one pipeline run.
type Analysis struct {
	Sentences   []Sentence
	Sentiment   Sentiment
	Readability Readability
	Record      Record
}

// Run segments and tags text, scores its sentiment and aggregates the
// readability metrics.
func (a *Analyzer) Run(text string) *Analysis {
	sentences := a.Segment(text)
	sentiment := a.lexicon.Score(sentences)
	readability := ComputeReadability(sentences)

	return &Analysis{
		Sentences:   sentences,
		Sentiment:   sentiment,
		Readability: readability,
		Record:      buildRecord(sentiment, readability),
	}
}

// Analyze returns the metrics record for text.
func (a *Analyzer) Analyze(text string) Record {
	return a.Run(text).Record
}

func buildRecord(s Sentiment, r Readability) Record {
	return Record{
		PositiveScore:               s.Positive(),
		NegativeScore:               s.Negative(),
		PolarityScore:               s.Polarity,
		SubjectivityScore:           s.Subjectivity,
		AvgSentenceLength:           r.AvgSentenceLength,
		PercentageOfComplexWords:    r.PercentageOfComplexWords,
		FogIndex:                    r.FogIndex,
		AvgNumberOfWordsPerSentence: r.AvgNumberOfWordsPerSentence,
		ComplexWordCount:            float64(r.ComplexWordCount),
		WordCount:                   float64(r.WordCount),
		SyllablePerWord:             r.SyllablePerWord,
		PersonalPronouns:            float64(r.PersonalPronouns),
		AvgWordLength:               r.AvgWordLength,
	}
}

var defaultAnalyzer = sync.OnceValue(func() *Analyzer {
	return New()
})

// Analyze runs text through a process-wide default Analyzer.
func Analyze(text string) Record {
	return defaultAnalyzer().Analyze(text)
}
