package panelmatch

import (
	"strings"
	"unicode"

	edlib "github.com/hbollon/go-edlib"
)

// French stop words stripped before word-overlap comparisons.
var stopWords = map[string]bool{
	"le": true, "la": true, "les": true, "un": true, "une": true, "des": true,
	"et": true, "ou": true, "de": true, "du": true, "au": true, "aux": true,
	"ce": true, "cette": true, "ces": true, "mon": true, "ton": true, "son": true,
	"notre": true, "votre": true, "leur": true,
	"je": true, "tu": true, "il": true, "elle": true, "nous": true, "vous": true,
	"ils": true, "elles": true,
	"a": true, "à": true, "en": true, "par": true, "pour": true, "avec": true,
	"sans": true, "dans": true, "sur": true, "sous": true,
	"est": true, "sont": true, "sera": true, "être": true, "avoir": true,
	"fait": true, "faire": true, "peut": true, "doit": true,
	"plus": true, "moins": true, "très": true, "peu": true, "trop": true,
	"tout": true, "tous": true, "toute": true, "toutes": true,
	"qui": true, "que": true, "quoi": true, "dont": true, "où": true,
	"quand": true, "comment": true, "pourquoi": true,
}

// Similarity compares two free texts and returns a score in [0,1]. It blends
// a Jaccard coefficient over significant words (weight 0.7, robust to word
// reordering) with a normalized edit-distance ratio over the raw lowercased
// strings (weight 0.3, catches near-duplicate phrases that word overlap
// misses on short strings). Symmetric in its arguments; 0 when either text
// is empty.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	a = normalizeText(a)
	b = normalizeText(b)

	jaccard := jaccardWords(SignificantWords(a), SignificantWords(b))

	ratio, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		ratio = 0
	}

	return jaccard*0.7 + float64(ratio)*0.3
}

// SignificantWords extracts the lowercased tokens of length >= 3 from a
// text, with French stop words removed.
func SignificantWords(text string) []string {
	if text == "" {
		return nil
	}
	var words []string
	for _, tok := range tokenize(strings.ToLower(text)) {
		if len([]rune(tok)) < 3 || stopWords[tok] {
			continue
		}
		words = append(words, tok)
	}
	return words
}

func jaccardWords(a, b []string) float64 {
	union := make(map[string]bool, len(a)+len(b))
	inA := make(map[string]bool, len(a))
	for _, w := range a {
		union[w] = true
		inA[w] = true
	}
	common := 0
	seen := make(map[string]bool, len(b))
	for _, w := range b {
		if !union[w] {
			union[w] = true
		} else if inA[w] && !seen[w] {
			common++
		}
		seen[w] = true
	}
	if len(union) == 0 {
		return 0
	}
	return float64(common) / float64(len(union))
}

// normalizeText lowercases a text and replaces punctuation with spaces so
// the edit-distance ratio is not dominated by formatting.
func normalizeText(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
