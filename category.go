package panelmatch

import "strings"

// Category is the semantic bucket a criterion is classified into. It
// determines which scorer and which aggregation weight apply.
type Category string

// Criterion categories.
const (
	CategoryCertification Category = "certification"
	CategoryGeographic    Category = "geographic"
	CategoryTechnical     Category = "technical"
	CategoryExperience    Category = "experience"
	CategoryDomain        Category = "domain"
	CategoryCapacity      Category = "capacity"
	CategoryOther         Category = "other"
)

// categoryKeywords are tested in order; the first group with a hit wins.
// The order is part of the contract: "Capacité technique" must resolve to
// technical, not capacity, so technical is checked first among the two.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryCertification, []string{"certification", "certif", "mase", "iso", "qualif"}},
	{CategoryGeographic, []string{"zone", "région", "region", "localisation", "géographique", "proximité"}},
	{CategoryTechnical, []string{"technique", "technologique", "compétence", "savoir"}},
	{CategoryExperience, []string{"expérience", "référence", "projet", "réalisation"}},
	{CategoryDomain, []string{"domaine", "activité", "spécialité", "métier"}},
	{CategoryCapacity, []string{"capacité", "taille", "effectif", "ca", "chiffre"}},
}

// Classify determines the category of a criterion from its name, falling
// back to its description when the name matches no keyword group. The
// result depends only on the criterion itself.
func Classify(criterion Criterion) Category {
	if cat, ok := classifyText(strings.ToLower(criterion.Name)); ok {
		return cat
	}
	if cat, ok := classifyText(strings.ToLower(criterion.Description)); ok {
		return cat
	}
	return CategoryOther
}

func classifyText(text string) (Category, bool) {
	if text == "" {
		return CategoryOther, false
	}
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				return group.category, true
			}
		}
	}
	return CategoryOther, false
}
