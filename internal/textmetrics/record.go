// Package textmetrics computes readability, part-of-speech and sentiment
// metrics for a single article.
//
// The pipeline is a pure function from raw text to a Record: it performs no
// I/O and holds no per-call state, so one Analyzer can serve any number of
// goroutines.
package textmetrics

// Metric names, in the column order used by result sheets.
const (
	KeyPositiveScore               = "PositiveScore"
	KeyNegativeScore               = "NegativeScore"
	KeyPolarityScore               = "PolarityScore"
	KeySubjectivityScore           = "SubjectivityScore"
	KeyAvgSentenceLength           = "AvgSentenceLength"
	KeyPercentageOfComplexWords    = "PercentageOfComplexWords"
	KeyFogIndex                    = "FogIndex"
	KeyAvgNumberOfWordsPerSentence = "AvgNumberOfWordsPerSentence"
	KeyComplexWordCount            = "ComplexWordCount"
	KeyWordCount                   = "WordCount"
	KeySyllablePerWord             = "SyllablePerWord"
	KeyPersonalPronouns            = "PersonalPronouns"
	KeyAvgWordLength               = "AvgWordLength"
)

// Keys lists every metric of a Record in column order.
var Keys = []string{
	KeyPositiveScore,
	KeyNegativeScore,
	KeyPolarityScore,
	KeySubjectivityScore,
	KeyAvgSentenceLength,
	KeyPercentageOfComplexWords,
	KeyFogIndex,
	KeyAvgNumberOfWordsPerSentence,
	KeyComplexWordCount,
	KeyWordCount,
	KeySyllablePerWord,
	KeyPersonalPronouns,
	KeyAvgWordLength,
}

// Record holds the metrics computed for one article. Every field is always
// set; degenerate input yields zeros, never NaN or Inf.
type Record struct {
	PositiveScore               float64 `json:"PositiveScore"`
	NegativeScore               float64 `json:"NegativeScore"`
	PolarityScore               float64 `json:"PolarityScore"`
	SubjectivityScore           float64 `json:"SubjectivityScore"`
	AvgSentenceLength           float64 `json:"AvgSentenceLength"`
	PercentageOfComplexWords    float64 `json:"PercentageOfComplexWords"`
	FogIndex                    float64 `json:"FogIndex"`
	AvgNumberOfWordsPerSentence float64 `json:"AvgNumberOfWordsPerSentence"`
	ComplexWordCount            float64 `json:"ComplexWordCount"`
	WordCount                   float64 `json:"WordCount"`
	SyllablePerWord             float64 `json:"SyllablePerWord"`
	PersonalPronouns            float64 `json:"PersonalPronouns"`
	AvgWordLength               float64 `json:"AvgWordLength"`
}

// Values returns the metrics in Keys order.
func (r Record) Values() []float64 {
	return []float64{
		r.PositiveScore,
		r.NegativeScore,
		r.PolarityScore,
		r.SubjectivityScore,
		r.AvgSentenceLength,
		r.PercentageOfComplexWords,
		r.FogIndex,
		r.AvgNumberOfWordsPerSentence,
		r.ComplexWordCount,
		r.WordCount,
		r.SyllablePerWord,
		r.PersonalPronouns,
		r.AvgWordLength,
	}
}

// Map returns the record as a metric name to value mapping.
func (r Record) Map() map[string]float64 {
	values := r.Values()
	m := make(map[string]float64, len(Keys))
	for i, key := range Keys {
		m[key] = values[i]
	}
	return m
}
