package panelmatch

import "strings"

// scoreExperience rates an experience criterion by blending the experience
// narrative (up to 60 points), the volume of the contract history (up to
// 30), the single most similar past contract (up to 40), and keyword
// overlap with the company profile (up to 20), capped at 100.
func scoreExperience(company *Company, criterion Criterion) int {
	_, desc := criterionText(criterion)

	score := 0

	if known(company.Experience) {
		sim := Similarity(desc, strings.ToLower(company.Experience))
		score += int(sim * 60)
	}

	if len(company.Contracts) > 0 {
		score += min(30, len(company.Contracts)*10)
		score += int(bestContractSimilarity(company, desc) * 40)
	}

	if matches := keywordMatches(company, desc); matches > 0 {
		score += min(20, matches*5)
	}

	return clamp100(score)
}
