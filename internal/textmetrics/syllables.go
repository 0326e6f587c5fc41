package textmetrics

import (
	"regexp"
	"strings"
	"unicode"
)

// additive patterns mark vowel groups that are pronounced as two syllables.
var additive = []*regexp.Regexp{
	regexp.MustCompile(`[^ct]ia`),      // media, trivial (not special, initial)
	regexp.MustCompile(`[^tscg]io`),    // radio, violin (not nation, region)
	regexp.MustCompile(`iu`),           // medium, stadium
	regexp.MustCompile(`[aeiouy]ing$`), // being, playing
	regexp.MustCompile(`[^gq]ua`),      // actual, dual
	regexp.MustCompile(`uiet`),         // quiet
	regexp.MustCompile(`[ai]sm$`),      // tourism, sarcasm
	regexp.MustCompile(`^mc`),          // mcdonald
	regexp.MustCompile(`^(re)?creat`),  // create, recreation
}

// Syllables estimates the number of syllables in a word from its spelling.
// Any word with a letter or digit has at least one syllable.
func Syllables(word string) int {
	w := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return foldVowel(unicode.ToLower(r))
		}
		return -1
	}, word)

	if w == "" {
		if strings.ContainsFunc(word, unicode.IsDigit) {
			return 1
		}
		return 0
	}

	count := vowelGroups(w)

	if count > 1 {
		switch {
		case silentE(w):
			count--
		case strings.HasSuffix(w, "ed") && silentSuffix(w, 2, "td"):
			count--
		case strings.HasSuffix(w, "es") && silentSuffix(w, 2, "sxzgc") &&
			!strings.HasSuffix(w, "ches") && !strings.HasSuffix(w, "shes"):
			count--
		case strings.HasSuffix(w, "ely") && len(w) > 3 && !isVowel(rune(w[len(w)-4])):
			count--
		}
	}

	for _, re := range additive {
		if re.MatchString(w) {
			count++
		}
	}

	if count < 1 {
		count = 1
	}
	return count
}

// vowelGroups counts maximal runs of vowels.
func vowelGroups(w string) int {
	groups := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}
	return groups
}

// silentE reports a final e after a consonant, except the syllabic
// consonant-l-e ending of words like "table".
func silentE(w string) bool {
	n := len(w)
	if n < 2 || w[n-1] != 'e' || isVowel(rune(w[n-2])) {
		return false
	}
	if w[n-2] == 'l' && n >= 3 && !isVowel(rune(w[n-3])) {
		return false
	}
	return true
}

// silentSuffix reports whether the suffix of length n follows a consonant
// that is not one of keep, which would make the suffix voiced.
func silentSuffix(w string, n int, keep string) bool {
	if len(w) <= n {
		return false
	}
	prev := rune(w[len(w)-n-1])
	return !isVowel(prev) && !strings.ContainsRune(keep, prev)
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouy", r)
}

// foldVowel maps accented vowels onto their base letter.
func foldVowel(r rune) rune {
	switch r {
	case 'à', 'á', 'â', 'ä', 'ã', 'å':
		return 'a'
	case 'è', 'é', 'ê', 'ë':
		return 'e'
	case 'ì', 'í', 'î', 'ï':
		return 'i'
	case 'ò', 'ó', 'ô', 'ö', 'õ':
		return 'o'
	case 'ù', 'ú', 'û', 'ü':
		return 'u'
	}
	return r
}
