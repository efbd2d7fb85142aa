package panelmatch

import "math"

// categoryWeights bias the aggregation toward the criteria that decide
// whether a company can do the work at all. Domain expertise weighs most,
// free-form criteria least.
var categoryWeights = map[Category]float64{
	CategoryCertification: 1.0,
	CategoryGeographic:    0.8,
	CategoryTechnical:     1.2,
	CategoryExperience:    1.0,
	CategoryDomain:        1.5,
	CategoryCapacity:      0.7,
	CategoryOther:         0.5,
}

const defaultCategoryWeight = 1.0

// fallbackScore substitutes for a company whose scoring failed and for the
// degenerate zero-total-weight case.
const fallbackScore = 50

// aggregate combines per-criterion scores into one weighted company score
// in [0,100] and returns the per-criterion sub-scores keyed by criterion
// name. The bonus is not applied here.
func aggregate(company *Company, criteria []Criterion) (int, map[string]int) {
	details := make(map[string]int, len(criteria))

	var total, weights float64
	for _, criterion := range criteria {
		category := Classify(criterion)
		weight, ok := categoryWeights[category]
		if !ok {
			weight = defaultCategoryWeight
		}

		score := scoreCriterion(company, criterion, category)
		details[criterion.Name] = score

		total += float64(score) * weight
		weights += weight
	}

	if weights <= 0 {
		return fallbackScore, details
	}
	return int(math.Round(total / weights)), details
}

// Bonus caps for the completeness/history reward.
const (
	bonusCertCap     = 10
	bonusContractCap = 15
	bonusTotalCap    = 20
)

// bonus rewards well-documented, experienced companies independent of
// criterion fit: certifications and contract history first, then a point
// per populated descriptive field. Capped at 20.
func bonus(company *Company) int {
	b := 0

	if n := len(company.Certifications); n > 0 {
		b += min(bonusCertCap, n*2)
	}
	if n := len(company.Contracts); n > 0 {
		b += min(bonusContractCap, n*3)
	}
	if company.Domain != "" && company.Domain != DomainAutre {
		b += 5
	}

	completeness := 0
	for _, field := range []string{company.Location, company.Experience, company.CA, company.Employees} {
		if known(field) {
			completeness++
		}
	}
	b += completeness

	return min(bonusTotalCap, b)
}
