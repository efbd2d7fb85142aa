package panelmatch

import "strings"

// French macro-regions recognized in criterion texts, with the keywords
// that name them. Ardennes is kept separate from Est because the Chooz
// site sits there and tenders name it directly.
var geoRegions = []struct {
	name     string
	keywords []string
}{
	{"ile-de-france", []string{"ile-de-france", "idf", "paris", "region parisienne"}},
	{"nord", []string{"nord", "hauts-de-france", "nord-pas-de-calais", "picardie"}},
	{"est", []string{"est", "grand est", "alsace", "lorraine", "champagne"}},
	{"ardennes", []string{"ardennes", "charleville", "sedan", "chooz"}},
	{"ouest", []string{"ouest", "bretagne", "normandie", "pays de loire"}},
	{"sud-ouest", []string{"sud-ouest", "nouvelle aquitaine", "aquitaine", "occitanie"}},
	{"sud-est", []string{"sud-est", "paca", "rhone alpes", "provence", "alpes", "cote d'azur"}},
	{"centre", []string{"centre", "val de loire", "auvergne", "limousin", "bourgogne"}},
}

// neighboringRegions maps each region to the regions a company can serve
// from next door.
var neighboringRegions = map[string][]string{
	"ile-de-france": {"est", "nord", "centre"},
	"nord":          {"ile-de-france", "est"},
	"est":           {"ile-de-france", "centre", "nord"},
	"ardennes":      {"est", "nord"},
	"ouest":         {"ile-de-france", "centre", "sud-ouest"},
	"sud-ouest":     {"centre", "ouest", "sud-est"},
	"sud-est":       {"centre", "sud-ouest"},
	"centre":        {"ile-de-france", "est", "ouest", "sud-est", "sud-ouest"},
}

// Geographic score constants. An unknown company location is weak but not
// disqualifying; a criterion naming no region is assumed national scope.
const (
	geoScoreExact    = 100
	geoScoreNeighbor = 70
	geoScoreNational = 60
	geoScoreNoRegion = 80
	geoScoreUnknown  = 30
)

// scoreGeographic rates a geographic criterion against the company
// location and inferred geo zone.
func scoreGeographic(company *Company, criterion Criterion) int {
	location := strings.ToLower(company.Location)
	zone := strings.ToLower(company.GeoZone)

	if !known(company.Location) && !known(company.GeoZone) {
		return geoScoreUnknown
	}

	// Hand-authored department filters bypass region inference entirely.
	if len(criterion.SelectedDepartments) > 0 {
		for _, dept := range criterion.SelectedDepartments {
			d := strings.ToLower(strings.TrimSpace(dept))
			if d == "" {
				continue
			}
			if strings.Contains(location, d) || strings.Contains(zone, d) {
				return geoScoreExact
			}
		}
		if isNational(location, zone) {
			return geoScoreNational
		}
		return 0
	}

	name, desc := criterionText(criterion)
	mentioned := mentionedRegions(name, desc)

	// No region named: assume the tender has national scope.
	if len(mentioned) == 0 {
		return geoScoreNoRegion
	}

	for _, region := range mentioned {
		if strings.Contains(location, region) || strings.Contains(zone, region) {
			return geoScoreExact
		}
		for _, kw := range regionKeywords(region) {
			if strings.Contains(location, kw) {
				return geoScoreExact
			}
		}
	}

	for _, region := range mentioned {
		for _, neighbor := range neighboringRegions[region] {
			if strings.Contains(zone, neighbor) {
				return geoScoreNeighbor
			}
		}
	}

	if isNational(location, zone) {
		return geoScoreNational
	}

	return 0
}

// mentionedRegions extracts the regions a criterion text names, in table
// order.
func mentionedRegions(name, desc string) []string {
	var regions []string
	for _, region := range geoRegions {
		for _, kw := range region.keywords {
			if strings.Contains(name, kw) || strings.Contains(desc, kw) {
				regions = append(regions, region.name)
				break
			}
		}
	}
	return regions
}

func regionKeywords(region string) []string {
	for _, r := range geoRegions {
		if r.name == region {
			return r.keywords
		}
	}
	return nil
}

func isNational(location, zone string) bool {
	return strings.Contains(zone, "france") || strings.Contains(location, "national")
}
