package importer

import (
	"strings"
	"unicode"

	"github.com/panel-entreprises/panelmatch"
)

// standardizeKeywords folds the many ways a dataset spells an activity into
// the canonical domain labels. Table order decides ties.
var standardizeKeywords = []struct {
	domain   string
	keywords []string
}{
	{panelmatch.DomainElectricite, []string{"electr", "élec", "électr", "energie", "énergie", "courant", "tension", "installation"}},
	{panelmatch.DomainMecanique, []string{"mécan", "mecan", "usinage", "machine", "moteur", "pompe", "turbine"}},
	{panelmatch.DomainHydraulique, []string{"hydraul", "hydro", "eau", "fluide", "tuyau", "pompage", "écoulement", "échangeur", "echangeur"}},
	{panelmatch.DomainBatiment, []string{"bâti", "bati", "construct", "btp", "génie civil", "genie civil", "maçon", "macon"}},
	{panelmatch.DomainMaintenance, []string{"mainten", "entretien", "réparation", "reparation", "service", "interventi", "inspection"}},
}

// standardizeDomain maps a raw activity label onto a canonical domain, or
// capitalises it unchanged when nothing matches.
func standardizeDomain(raw string) string {
	lower := strings.ToLower(raw)
	for _, sd := range standardizeKeywords {
		for _, kw := range sd.keywords {
			if strings.Contains(lower, kw) {
				return sd.domain
			}
		}
	}
	return capitalize(raw)
}

// nameKeywords tie company-name fragments to a domain.
var nameKeywords = []struct {
	domain   string
	keywords []string
}{
	{panelmatch.DomainElectricite, []string{"electr", "élec", "energ", "énerg", "power", "tension", "courant", "eclairage", "éclairage"}},
	{panelmatch.DomainMecanique, []string{"mecan", "mécan", "usinage", "machine", "moteur", "turbine", "pompe"}},
	{panelmatch.DomainHydraulique, []string{"hydraul", "hydro", "eau", "fluid", "tuyau", "échangeur", "echangeur", "pompage"}},
	{panelmatch.DomainBatiment, []string{"batiment", "bâtiment", "construction", "btp", "genie", "génie", "maçon", "macon", "renov"}},
	{panelmatch.DomainMaintenance, []string{"mainten", "entretien", "service", "répar", "repar", "interven", "assist"}},
}

// inferDomainFromName guesses a domain from the company name alone.
func inferDomainFromName(name string) string {
	lower := strings.ToLower(name)
	for _, nk := range nameKeywords {
		for _, kw := range nk.keywords {
			if strings.Contains(lower, kw) {
				return nk.domain
			}
		}
	}
	return panelmatch.DomainAutre
}

// weightedKeywords score descriptive text per domain; the strongest total
// wins, earlier table entries win ties.
var weightedKeywords = []struct {
	domain   string
	keywords map[string]int
}{
	{panelmatch.DomainElectricite, map[string]int{
		"electricité": 5, "électricité": 5, "électrique": 4, "electrique": 4,
		"courant": 3, "tension": 3, "énergie": 3, "energie": 3,
		"tableau électrique": 4, "installation électrique": 5,
	}},
	{panelmatch.DomainMecanique, map[string]int{
		"mécanique": 5, "mecanique": 5, "usinage": 4, "tournage": 3,
		"fraisage": 3, "machine": 2, "moteur": 3, "pompe": 2,
		"turbine": 4, "roulement": 3, "pièce": 2, "piece": 2,
	}},
	{panelmatch.DomainHydraulique, map[string]int{
		"hydraulique": 5, "eau": 2, "fluide": 3, "tuyauterie": 4,
		"échangeur": 5, "echangeur": 5, "pompage": 4, "vanne": 3,
		"circuit hydraulique": 5, "pression": 2, "débit": 2, "debit": 2,
	}},
	{panelmatch.DomainBatiment, map[string]int{
		"bâtiment": 5, "batiment": 5, "construction": 4, "btp": 4,
		"génie civil": 5, "genie civil": 5, "maçonnerie": 4, "maconnerie": 4,
		"rénovation": 3, "renovation": 3, "isolation": 3,
	}},
	{panelmatch.DomainMaintenance, map[string]int{
		"maintenance": 5, "entretien": 4, "réparation": 4, "reparation": 4,
		"service": 3, "intervention": 3, "dépannage": 4, "depannage": 4,
		"contrôle": 3, "controle": 3, "inspection": 4,
	}},
}

// inferDomainFromText guesses a domain from free text by weighted keyword
// scoring.
func inferDomainFromText(text string) string {
	if text == "" {
		return panelmatch.DomainAutre
	}
	lower := strings.ToLower(text)

	best := panelmatch.DomainAutre
	bestScore := 0
	for _, wk := range weightedKeywords {
		score := 0
		for keyword, weight := range wk.keywords {
			if strings.Contains(lower, keyword) {
				score += weight
			}
		}
		if score > bestScore {
			best = wk.domain
			bestScore = score
		}
	}
	return best
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
