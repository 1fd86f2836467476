// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking palette entries
// ABOUTME: An empty pattern keeps every item in its original order

package fuzzy

import "github.com/sahilm/fuzzy"

// Match is one ranked result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Source is any indexed list of strings that can be matched.
type Source = fuzzy.Source

// Find ranks items against pattern, best first.
func Find(pattern string, items []string) []Match {
	return FindFrom(pattern, fuzzy.Source(stringSource(items)))
}

// FindFrom ranks the entries of data against pattern, best first.
func FindFrom(pattern string, data Source) []Match {
	if pattern == "" {
		all := make([]Match, data.Len())
		for i := range all {
			all[i] = Match{Str: data.String(i), Index: i}
		}
		return all
	}
	results := fuzzy.FindFrom(pattern, data)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

type stringSource []string

func (s stringSource) String(i int) string { return s[i] }
func (s stringSource) Len() int            { return len(s) }
