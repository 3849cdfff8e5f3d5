package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// Offset is a half-open byte range [Start, End) into the source text.
type Offset struct {
	Start int
	End   int
}

// Token is one normalized term emitted by Tokenize.
//
// Term is the lowercased, stemmed form used as an index key. Position is
// the zero-based sequential index of the token among all tokens emitted
// for one Tokenize call; dropped stopwords do not leave gaps. Offset is
// the byte span of the original, un-normalized surface form.
type Token struct {
	Term     string
	Position int
	Offset   Offset
}

// Tokenizer maps text to a token sequence for one language profile.
// It is stateless after construction and safe for concurrent use.
type Tokenizer struct {
	language Language
	profile  profile
}

// New creates a Tokenizer for the given language. It never fails; unknown
// languages use the English profile.
func New(language Language) *Tokenizer {
	return &Tokenizer{
		language: language,
		profile:  profileFor(language),
	}
}

// Language returns the language the tokenizer was constructed with.
func (t *Tokenizer) Language() Language {
	return t.language
}

// Tokenize scans text by Unicode scalar value and returns the surviving
// tokens. It never fails; empty input yields an empty slice.
//
// A run of alphabetic characters forms a candidate word. Whitespace or
// ASCII punctuation terminates the current word and marks where the next
// word's offset starts. Each completed word is lowercased and stemmed;
// the token is dropped when the stemmed form is empty or a stopword.
func (t *Tokenizer) Tokenize(text string) []Token {
	var tokens []Token

	var word []rune
	position := 0
	start := 0

	flush := func(end int) {
		if len(word) == 0 {
			return
		}
		term := t.profile.stem(string(word))
		word = word[:0]
		if term == "" {
			return
		}
		if _, stop := t.profile.stopwords[term]; stop {
			return
		}
		tokens = append(tokens, Token{
			Term:     term,
			Position: position,
			Offset:   Offset{Start: start, End: end},
		})
		position++
	}

	for i, r := range text {
		switch {
		case unicode.IsLetter(r):
			word = append(word, unicode.ToLower(r))
		case unicode.IsSpace(r) || isASCIIPunct(r):
			flush(i)
			start = i + utf8.RuneLen(r)
		}
	}
	flush(len(text))

	return tokens
}

// isASCIIPunct reports whether r is an ASCII punctuation character,
// i.e. a printable ASCII character that is neither alphanumeric nor space.
func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	default:
		return false
	}
}
