package deadline

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Estimate breaks a difficulty score down into the signals that produced it.
type Estimate struct {
	HighCount      int
	MediumCount    int
	LowCount       int
	PositionalBias float64
	Raw            float64
	Score          float64
}

// EstimateDifficulty scores one step from its text and 1-based position. The result is always in
// [MinDifficulty, MaxDifficulty].
func EstimateDifficulty(text string, position int) float64 {
	return Explain(text, position).Score
}

// Explain is EstimateDifficulty with the intermediate counts exposed.
func Explain(text string, position int) Estimate {
	var e Estimate
	normalized := normalize(text)
	if strings.TrimSpace(normalized) != "" {
		counts := [len(keywordTable)]int{}
		for i, set := range keywordTable {
			counts[i] = countTerms(normalized, set.terms)
		}
		e.HighCount, e.MediumCount, e.LowCount = counts[0], counts[1], counts[2]
	}

	e.PositionalBias = positionalBias(position)
	e.Raw = BaseDifficulty +
		float64(e.HighCount)*highWeight +
		float64(e.MediumCount)*mediumWeight +
		float64(e.LowCount)*lowWeight +
		e.PositionalBias
	e.Score = clamp(e.Raw, MinDifficulty, MaxDifficulty)
	return e
}

// countTerms counts distinct terms present, not occurrences.
func countTerms(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

func positionalBias(position int) float64 {
	switch {
	case position <= 2:
		return 0.5
	case position <= 4:
		return 1.0
	default:
		return 1.5
	}
}

// normalize lowercases text and strips diacritics so "Planificación" matches "planificacion".
func normalize(text string) string {
	lower := strings.ToLower(text)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return folded
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
