package panelmatch

import (
	"math"
	"strings"
)

// scoreTechnical rates a technical criterion as a weighted blend: domain
// relevance carries 40%, similarity of the criterion to the company's
// experience narrative 30%, and to its single best-matching contract 30%,
// with up to 20 extra points for an explicitly listed capability.
func scoreTechnical(company *Company, criterion Criterion) int {
	_, desc := criterionText(criterion)

	score := float64(scoreDomain(company, criterion)) * 0.4

	if known(company.Experience) {
		sim := Similarity(desc, strings.ToLower(company.Experience))
		score += sim * 100 * 0.3
	}

	if best := bestContractSimilarity(company, desc); best > 0 {
		score += best * 100 * 0.3
	}

	if len(company.Capabilities) > 0 {
		var best float64
		for _, capability := range company.Capabilities {
			if sim := Similarity(desc, strings.ToLower(capability)); sim > best {
				best = sim
			}
		}
		score += math.Min(20, best*100*0.2)
	}

	return clamp100(int(score))
}

// bestContractSimilarity returns the highest similarity between a criterion
// description and any single contract description, 0 when the history is
// empty.
func bestContractSimilarity(company *Company, desc string) float64 {
	var best float64
	for _, contract := range company.Contracts {
		if sim := Similarity(desc, strings.ToLower(contract.Description)); sim > best {
			best = sim
		}
	}
	return best
}
