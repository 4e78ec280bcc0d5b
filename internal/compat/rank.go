package compat

import (
	"sort"

	"github.com/dshills/nighttype/internal/quiz"
)

// RankAllAgainst resolves code against every other registered code and
// sorts the results by score descending. Ties keep registry order.
func (r *Resolver) RankAllAgainst(code quiz.Code) []Result {
	all := r.reg.AllCodes()
	results := make([]Result, 0, len(all))
	for _, other := range all {
		if other == code {
			continue
		}
		results = append(results, r.Resolve(code, other))
	}
	SortResults(results)
	return results
}

// Top returns the n best partners for code.
func (r *Resolver) Top(code quiz.Code, n int) []Result {
	ranked := r.RankAllAgainst(code)
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// SortResults sorts by score descending, keeping the existing order of
// equal scores.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
