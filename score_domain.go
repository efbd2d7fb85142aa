package panelmatch

import (
	"math"
	"strings"
)

// domainBaseScores reflect how relevant each activity domain typically is
// to the projects this panel serves. Maintenance and Hydraulique dominate
// the tender history; an unspecified domain is a weak signal.
var domainBaseScores = map[string]int{
	strings.ToLower(DomainMaintenance): 95,
	strings.ToLower(DomainHydraulique): 90,
	strings.ToLower(DomainElectricite): 85,
	strings.ToLower(DomainMecanique):   80,
	strings.ToLower(DomainBatiment):    75,
}

const domainBaseDefault = 30

// domainKeywords name each domain in criterion texts, accented and plain
// spellings both.
var domainKeywords = []struct {
	domain   string
	keywords []string
}{
	{strings.ToLower(DomainElectricite), []string{"électricité", "electricite", "électrique", "electrique", "courant", "tension"}},
	{strings.ToLower(DomainMecanique), []string{"mécanique", "mecanique", "usinage", "machines", "pièces", "pieces"}},
	{strings.ToLower(DomainHydraulique), []string{"hydraulique", "fluide", "eau", "circuit", "échangeur", "echangeur"}},
	{strings.ToLower(DomainBatiment), []string{"bâtiment", "batiment", "construction", "btp", "génie civil", "genie civil"}},
	{strings.ToLower(DomainMaintenance), []string{"maintenance", "entretien", "réparation", "reparation", "service"}},
}

// scoreDomain rates a domain criterion: base relevance of the company's
// domain, boosted when the criterion names it, with keyword and
// experience-similarity fallbacks when the criterion names no domain.
func scoreDomain(company *Company, criterion Criterion) int {
	companyDomain := strings.ToLower(company.Domain)
	base, ok := domainBaseScores[companyDomain]
	if !ok {
		base = domainBaseDefault
	}

	name, desc := criterionText(criterion)
	mentioned := mentionedDomains(name, desc)

	for _, domain := range mentioned {
		if domain == companyDomain {
			return min(100, base+15)
		}
	}

	if len(mentioned) == 0 {
		if matches := keywordMatches(company, desc); matches > 0 {
			return min(90, 50+10*matches)
		}
		if known(company.Experience) {
			if sim := Similarity(desc, strings.ToLower(company.Experience)); sim > 0.4 {
				return int(math.Round(sim * 90))
			}
		}
	}

	return base
}

func mentionedDomains(name, desc string) []string {
	var domains []string
	for _, entry := range domainKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) || strings.Contains(desc, kw) {
				domains = append(domains, entry.domain)
				break
			}
		}
	}
	return domains
}
