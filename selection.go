package panelmatch

import "sort"

// selectResults filters scored companies by minimum score, sorts them by
// descending score (ties keep input order), and truncates to maxResults
// with diversity injection: pure score ranking clusters around one dominant
// domain or region when the registry is skewed, so the tail slots prefer
// candidates that add a new domain or geo zone.
func selectResults(matches []MatchResult, minScore, maxResults int) []MatchResult {
	qualified := make([]MatchResult, 0, len(matches))
	for _, m := range matches {
		if m.Score >= minScore {
			qualified = append(qualified, m)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].Score > qualified[j].Score
	})

	return diversify(qualified, maxResults)
}

// diversify truncates a sorted match list to maxResults. The top
// min(3, maxResults/2) entries always survive; the remaining slots are
// filled greedily preferring candidates whose domain or geo zone is not
// represented yet, then topped up with the next-highest untaken candidates.
func diversify(sorted []MatchResult, maxResults int) []MatchResult {
	if len(sorted) <= maxResults {
		return sorted
	}

	keep := min(3, maxResults/2)
	top := sorted[:keep]
	slots := maxResults - keep
	if slots <= 0 {
		return top
	}
	candidates := sorted[keep:]

	seenDomains := make(map[string]bool, maxResults)
	seenZones := make(map[string]bool, maxResults)
	for _, m := range top {
		seenDomains[m.Domain] = true
		seenZones[m.GeoZone] = true
	}

	picked := make([]MatchResult, 0, slots)
	taken := make([]bool, len(candidates))

	for i, candidate := range candidates {
		if len(picked) >= slots {
			break
		}
		if !seenDomains[candidate.Domain] || !seenZones[candidate.GeoZone] {
			picked = append(picked, candidate)
			taken[i] = true
			seenDomains[candidate.Domain] = true
			seenZones[candidate.GeoZone] = true
		}
	}

	for i, candidate := range candidates {
		if len(picked) >= slots {
			break
		}
		if !taken[i] {
			picked = append(picked, candidate)
			taken[i] = true
		}
	}

	return append(top, picked...)
}
