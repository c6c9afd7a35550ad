package catalog

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// maxSuggestions caps how many "did you mean" ids are returned.
const maxSuggestions = 3

// Suggest returns track ids that fuzzily match input, best match first.
// Labels are matched too, so "fairness" finds the bias track.
func (c *Catalog) Suggest(input string) []string {
	if input == "" {
		return nil
	}

	ranks := fuzzy.RankFindFold(input, c.IDs())
	sort.Sort(ranks)
	ids := lo.Map(ranks, func(r fuzzy.Rank, _ int) string { return r.Target })

	for _, t := range c.tracks {
		if fuzzy.MatchFold(input, t.Label) {
			ids = append(ids, t.ID)
		}
	}

	ids = lo.Uniq(ids)
	if len(ids) > maxSuggestions {
		ids = ids[:maxSuggestions]
	}
	return ids
}
