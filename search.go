package phonefield

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// dropdown query parser and scoring engine.
// uses junegunn/fzf's algo package for matching/scoring.
//
// query syntax:
//   "fra"     fuzzy subsequence match
//   "'fra"    exact substring match
//   "+33"     dial-code prefix match
//   "a b"     AND — all space-separated terms must match

func init() {
	algo.Init("default")
}

var searchSlab = util.MakeSlab(100*1024, 2048)

// searchQuery is a pre-parsed dropdown query. parse once, score many.
type searchQuery struct {
	terms []searchTerm
}

type searchTermKind int

const (
	termFuzzy searchTermKind = iota
	termExact
	termPrefix
)

type searchTerm struct {
	pattern       string
	patRunes      []rune
	kind          searchTermKind
	caseSensitive bool
}

// parseSearchQuery parses a raw query string into a reusable searchQuery.
func parseSearchQuery(raw string) searchQuery {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return searchQuery{}
	}

	var q searchQuery
	for _, tok := range strings.Fields(raw) {
		q.terms = append(q.terms, parseSearchTerm(tok))
	}
	return q
}

// Empty reports whether the query has no terms.
func (q *searchQuery) Empty() bool {
	return len(q.terms) == 0
}

func parseSearchTerm(tok string) searchTerm {
	t := searchTerm{kind: termFuzzy}

	if len(tok) > 1 && tok[0] == '\'' {
		t.kind = termExact
		tok = tok[1:]
	} else if tok[0] == '+' || (tok[0] >= '0' && tok[0] <= '9') {
		// digits target the "+<dial>" part of the search key
		t.kind = termPrefix
		if tok[0] != '+' {
			tok = "+" + tok
		}
	}

	t.caseSensitive = hasUppercase(tok)
	if !t.caseSensitive {
		tok = strings.ToLower(tok)
	}

	t.pattern = tok
	t.patRunes = []rune(tok)
	return t
}

func hasUppercase(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsUpper(r) {
			return true
		}
		i += size
	}
	return false
}

// Score scores a single candidate against the parsed query.
// returns (score, matched). higher score = better match.
func (q *searchQuery) Score(candidate string) (int, bool) {
	if len(q.terms) == 0 {
		return 0, true
	}
	total := 0
	for i := range q.terms {
		score, ok := q.terms[i].score(candidate)
		if !ok {
			return 0, false
		}
		total += score
	}
	return total, true
}

func (t *searchTerm) score(candidate string) (int, bool) {
	chars := util.ToChars([]byte(candidate))

	var algoFn func(bool, bool, bool, *util.Chars, []rune, bool, *util.Slab) (algo.Result, *[]int)
	switch t.kind {
	case termExact:
		algoFn = algo.ExactMatchNaive
	case termPrefix:
		// dial codes live mid-key, so prefix terms match as substrings
		algoFn = algo.ExactMatchNaive
	default:
		algoFn = algo.FuzzyMatchV2
	}

	result, _ := algoFn(t.caseSensitive, false, true, &chars, t.patRunes, false, searchSlab)
	if result.Start < 0 {
		return 0, false
	}
	return result.Score, true
}
