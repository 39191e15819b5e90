package analytics

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

type Analytics struct{}

// stopwords are ignored in frequency analysis: function words plus storefront chrome.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "am": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {}, "been": {},
	"but": {}, "by": {}, "can": {}, "do": {}, "does": {}, "each": {}, "for": {},
	"from": {}, "get": {}, "had": {}, "has": {}, "have": {}, "he": {}, "her": {},
	"his": {}, "how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "its": {}, "just": {}, "me": {}, "more": {}, "most": {}, "my": {},
	"new": {}, "no": {}, "not": {}, "now": {}, "of": {}, "on": {}, "one": {},
	"only": {}, "or": {}, "our": {}, "out": {}, "over": {}, "she": {}, "so": {},
	"some": {}, "than": {}, "that": {}, "the": {}, "their": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {}, "to": {},
	"up": {}, "us": {}, "very": {}, "was": {}, "we": {}, "were": {}, "what": {},
	"when": {}, "which": {}, "who": {}, "will": {}, "with": {}, "you": {},
	"your": {},

	// Storefront chrome
	"account": {}, "add": {}, "cart": {}, "checkout": {}, "click": {},
	"cookie": {}, "cookies": {}, "login": {}, "menu": {}, "page": {},
	"privacy": {}, "search": {}, "sign": {}, "site": {}, "view": {},
	"website": {},
}

// IsStopword reports whether word is ignored by WordFrequency.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}

// WordFrequency counts lower-cased words, ignoring stopwords, numbers and single letters.
func (a *Analytics) WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len([]rune(word)) < 2 || !hasLetter(word) {
			continue
		}
		if IsStopword(word) {
			continue
		}
		frequencies[word]++
	}
	return frequencies
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// TopKeywords returns up to n "word:count" strings ordered by count, then word.
func TopKeywords(counts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	ss := make([]kv, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < limit {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return keywords
}
