// Package tokenizer turns raw UTF-8 text into a stream of normalized,
// position- and offset-annotated terms.
//
// Tokenization is deterministic and side-effect free: the input is scanned
// rune by rune, runs of alphabetic characters are lowercased and stemmed
// with the Snowball English stemmer, stopwords are dropped, and every
// surviving token carries the byte span of its original surface form.
//
// # Usage
//
//	tok := tokenizer.New(tokenizer.English)
//	tokens := tok.Tokenize("The quick fox jumps!")
//	// [{quick 0 {4 9}} {fox 1 {10 13}} {jump 2 {14 19}}]
//
// # Offsets
//
// Offsets are byte offsets into the exact input string, never character
// counts. The substring at a token's offset range, lowercased, equals the
// pre-stem surface form of the token.
package tokenizer
