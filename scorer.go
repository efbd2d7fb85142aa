package panelmatch

import "strings"

// scoreCriterion rates how well a company satisfies one criterion, using
// the scorer of the criterion's category. All scorers return a value in
// [0,100] and treat missing company data as a defined low or neutral score
// rather than an error.
func scoreCriterion(company *Company, criterion Criterion, category Category) int {
	switch category {
	case CategoryCertification:
		return scoreCertification(company, criterion)
	case CategoryGeographic:
		return scoreGeographic(company, criterion)
	case CategoryTechnical:
		return scoreTechnical(company, criterion)
	case CategoryExperience:
		return scoreExperience(company, criterion)
	case CategoryDomain:
		return scoreDomain(company, criterion)
	case CategoryCapacity:
		return scoreCapacity(company, criterion)
	default:
		return scoreGeneric(company, criterion)
	}
}

// criterionText returns the lowercased name and description of a criterion.
func criterionText(criterion Criterion) (name, desc string) {
	return strings.ToLower(criterion.Name), strings.ToLower(criterion.Description)
}

func clamp100(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// keywordMatches counts the distinct significant words of a text that
// appear among the company's precomputed keywords.
func keywordMatches(company *Company, text string) int {
	keywords := company.keywordSet()
	if len(keywords) == 0 {
		return 0
	}
	matched := 0
	seen := make(map[string]bool)
	for _, word := range SignificantWords(text) {
		if keywords[word] && !seen[word] {
			matched++
			seen[word] = true
		}
	}
	return matched
}
