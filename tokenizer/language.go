package tokenizer

import "github.com/kljensen/snowball/english"

// Language selects the normalization profile (stemmer + stopword set)
// used by a Tokenizer. The enumeration is closed: adding a language means
// adding a value here plus its profile, the Tokenize contract is unchanged.
type Language int

const (
	// English is the built-in profile: Snowball English stemming and a
	// fixed stopword set.
	English Language = iota
)

// String returns the lowercase name of the language.
func (l Language) String() string {
	switch l {
	case English:
		return "english"
	default:
		return "unknown"
	}
}

// profile bundles the per-language normalization pieces.
type profile struct {
	stem      func(word string) string
	stopwords map[string]struct{}
}

// englishStopwords is the fixed stopword set for the English profile.
// Membership is tested against the stemmed form of a word.
var englishStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "has": {}, "he": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {},
	"that": {}, "the": {}, "to": {}, "was": {}, "were": {},
	"will": {}, "with": {},
}

// profileFor resolves the profile for a language. Unknown values fall back
// to English so a Tokenizer is always usable.
func profileFor(l Language) profile {
	switch l {
	case English:
		fallthrough
	default:
		return profile{
			stem:      func(word string) string { return english.Stem(word, true) },
			stopwords: englishStopwords,
		}
	}
}
