package panelmatch

// scoreGeneric rates a criterion that fits no specific category by
// comparing it against a concatenated text profile of the whole company:
// up to 80 points of text similarity plus up to 20 points of keyword
// overlap.
func scoreGeneric(company *Company, criterion Criterion) int {
	name, desc := criterionText(criterion)

	sim := Similarity(name+" "+desc, company.profile())
	score := int(sim * 80)

	if matches := keywordMatches(company, desc); matches > 0 {
		score += min(20, matches*5)
	}

	return clamp100(score)
}
