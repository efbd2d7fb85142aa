package mistral

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	bareJSONPattern   = regexp.MustCompile(`(?s)(\{.*\})`)
)

// parseAnalysis extracts the JSON payload from a model answer and repairs
// the usual omissions: models skip ids, drop the selected flag or return
// weights that do not total 100.
func parseAnalysis(answer string) (Analysis, error) {
	payload := answer
	if m := fencedJSONPattern.FindStringSubmatch(answer); m != nil {
		payload = m[1]
	} else if m := bareJSONPattern.FindStringSubmatch(answer); m != nil {
		payload = m[1]
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		return Analysis{}, fmt.Errorf("decode analysis: %w", err)
	}

	repairAnalysis(&analysis)
	return analysis, nil
}

func repairAnalysis(analysis *Analysis) {
	if len(analysis.Keywords) == 0 {
		analysis.Keywords = []string{"Projet", "Consultation"}
	}

	for i := range analysis.SelectionCriteria {
		c := &analysis.SelectionCriteria[i]
		if c.ID == 0 {
			c.ID = i + 1
		}
		if strings.TrimSpace(c.Name) == "" {
			c.Name = fmt.Sprintf("Critère %d", i+1)
		}
		if strings.TrimSpace(c.Description) == "" {
			c.Description = "Description à compléter"
		}
	}

	normalizeWeights(analysis.AttributionCriteria)
}

// normalizeWeights rescales attribution weights to total exactly 100,
// absorbing rounding drift into the first criterion.
func normalizeWeights(criteria []AttributionCriterion) {
	if len(criteria) == 0 {
		return
	}

	total := 0
	for _, c := range criteria {
		total += c.Weight
	}
	if total == 100 {
		return
	}

	if total > 0 {
		factor := 100 / float64(total)
		for i := range criteria {
			criteria[i].Weight = int(math.Round(float64(criteria[i].Weight) * factor))
		}
	}

	current := 0
	for _, c := range criteria {
		current += c.Weight
	}
	criteria[0].Weight += 100 - current
}
