package importer

import (
	"strconv"
	"strings"

	"github.com/panel-entreprises/panelmatch"
)

// geoZones maps location fragments and department codes onto the macro
// zones the matcher reasons about. Table order decides when a location
// names several.
var geoZones = []struct {
	zone     string
	keywords []string
}{
	{"Ile-de-France", []string{"paris", "ile-de-france", "idf", "75", "77", "78", "91", "92", "93", "94", "95"}},
	{"Nord", []string{"nord", "hauts-de-france", "lille", "amiens", "59", "62", "80", "60", "02"}},
	{"Est", []string{"est", "grand est", "alsace", "lorraine", "champagne", "strasbourg", "nancy", "metz", "reims", "mulhouse", "67", "68", "57", "54", "55", "88", "51", "52", "10"}},
	{"Ardennes", []string{"ardennes", "charleville", "sedan", "chooz", "08"}},
	{"Ouest", []string{"ouest", "bretagne", "normandie", "pays de la loire", "rennes", "nantes", "caen", "rouen", "angers", "35", "44", "29", "56", "22", "50", "14", "61", "53", "72", "49", "85"}},
	{"Sud-Ouest", []string{"sud-ouest", "nouvelle-aquitaine", "bordeaux", "toulouse", "pau", "bayonne", "33", "40", "64", "65", "32", "31", "09", "81", "82"}},
	{"Sud-Est", []string{"sud-est", "paca", "rhone-alpes", "auvergne", "marseille", "lyon", "nice", "grenoble", "13", "84", "04", "05", "06", "83", "69", "38", "73", "74", "01", "26", "07"}},
	{"Centre", []string{"centre", "centre-val de loire", "orleans", "tours", "bourges", "45", "41", "37", "36", "18", "28"}},
}

// determineGeoZone classifies a formatted location into a macro zone.
// Unlocated companies stay unlocated; everything else defaults to national
// coverage.
func determineGeoZone(location string) string {
	if location == panelmatch.NotSpecified || location == "" {
		return panelmatch.NotSpecified
	}

	lower := strings.ToLower(location)
	for _, gz := range geoZones {
		for _, kw := range gz.keywords {
			if strings.Contains(lower, kw) {
				return gz.zone
			}
		}
	}
	return "France"
}

// domainKeywords seed the keyword list per canonical domain.
var domainKeywords = map[string][]string{
	panelmatch.DomainElectricite: {"électrique", "électricien", "courant", "installation"},
	panelmatch.DomainMecanique:   {"mécanique", "usinage", "pièces", "machines"},
	panelmatch.DomainHydraulique: {"hydraulique", "fluide", "eau", "échangeur"},
	panelmatch.DomainBatiment:    {"construction", "bâtiment", "génie civil", "chantier"},
	panelmatch.DomainMaintenance: {"maintenance", "entretien", "réparation", "service"},
}

// generateKeywords derives the matching keyword set from a company's
// domain, certifications, size, zone and capabilities. Deduplicated, in
// derivation order.
func generateKeywords(c *panelmatch.Company) []string {
	var keywords []string
	seen := map[string]bool{}
	add := func(kw string) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && !seen[kw] {
			keywords = append(keywords, kw)
			seen[kw] = true
		}
	}

	if c.Domain != panelmatch.DomainAutre && c.Domain != "" {
		add(c.Domain)
		for _, kw := range domainKeywords[c.Domain] {
			add(kw)
		}
	}

	for _, cert := range c.Certifications {
		add(cert)
		if cert == "MASE" {
			add("sécurité")
			add("hse")
		} else if strings.Contains(cert, "ISO") {
			add("qualité")
			add("certification")
		}
	}

	if c.Employees != panelmatch.NotSpecified {
		if m := digitsPattern.FindString(c.Employees); m != "" {
			if count, err := strconv.Atoi(m); err == nil {
				switch {
				case count > 100:
					add("grande entreprise")
				case count > 50:
					add("entreprise moyenne")
				case count > 10:
					add("petite entreprise")
				default:
					add("très petite entreprise")
				}
			}
		}
	}

	if c.GeoZone != panelmatch.NotSpecified && c.GeoZone != "" {
		add(c.GeoZone)
	}

	for _, cap := range c.Capabilities {
		for _, word := range strings.Fields(strings.ToLower(cap)) {
			if len([]rune(word)) > 4 {
				add(word)
			}
		}
	}

	return keywords
}
