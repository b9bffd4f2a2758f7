package classifier

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// Tokenize lowercases a message and reduces every word to its stem, so
// that "flooding" and "floods" land on the same term.
func Tokenize(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		stemmed, err := snowball.Stem(w, "english", true)
		if err != nil || stemmed == "" {
			tokens = append(tokens, w)
			continue
		}
		tokens = append(tokens, stemmed)
	}
	return tokens
}
