package mistral

import (
	"fmt"
	"strings"

	"github.com/panel-entreprises/panelmatch"
)

// technicalTerms map a keyword label to the text fragments announcing it.
// Table order fixes the keyword order in fallback analyses.
var technicalTerms = []struct {
	term     string
	patterns []string
}{
	{"Électricité", []string{"électr", "électriq", "courant", "tension", "aliment", "câbl"}},
	{"Mécanique", []string{"mécan", "usinage", "tourna", "fraisage", "pièce"}},
	{"Hydraulique", []string{"hydraul", "fluid", "eau", "circuit", "pompe", "écoulement"}},
	{"Maintenance", []string{"mainten", "entretien", "réparation", "service", "dépannage"}},
	{"Bâtiment", []string{"bâtiment", "construction", "génie civil", "maçonnerie"}},
	{"Échangeur", []string{"échangeur", "plaque", "thermique", "chaleur", "transfert"}},
	{"Nettoyage", []string{"nettoy", "décontam", "lavage", "décapage", "propreté"}},
	{"Sécurité", []string{"sécurité", "prévention", "risque", "danger", "protection"}},
}

// knownSites are the locations worth surfacing as keywords.
var knownSites = []string{"Chooz", "Ardennes", "Grand Est", "Nord-Est"}

// domainTerms pick the specialised competence criterion added to fallback
// analyses.
var domainTerms = []struct {
	domain   string
	patterns []string
}{
	{"électricité", []string{"électr", "électriq", "courant", "tension", "aliment", "câbl"}},
	{"mécanique", []string{"mécan", "usinage", "tourna", "fraisage", "pièce"}},
	{"hydraulique", []string{"hydraul", "fluid", "eau", "circuit", "pompe", "écoulement"}},
	{"échangeur thermique", []string{"échangeur", "plaque", "thermique", "chaleur"}},
	{"nettoyage industriel", []string{"nettoy", "décontam", "lavage", "décapage"}},
	{"maintenance", []string{"mainten", "entretien", "réparation", "service"}},
}

// fallbackAnalysis builds a deterministic analysis from the document text
// alone, used when the provider cannot.
func fallbackAnalysis(document string) Analysis {
	criteria := []panelmatch.Criterion{
		{ID: 1, Name: "Certification MASE", Description: "L'entreprise doit être certifiée MASE pour intervenir sur sites industriels", Selected: true},
		{ID: 2, Name: "Expérience similaire", Description: "L'entreprise doit justifier d'expériences sur des projets similaires", Selected: true},
		{ID: 3, Name: "Zone d'intervention", Description: "L'entreprise doit pouvoir intervenir dans la zone géographique du projet", Selected: true},
		{ID: 4, Name: "Capacité technique", Description: "L'entreprise doit disposer des moyens techniques nécessaires", Selected: true},
	}

	if domain := fallbackDomain(document); domain != "" {
		criteria = append(criteria, panelmatch.Criterion{
			ID:          5,
			Name:        fmt.Sprintf("Compétence %s", domain),
			Description: fmt.Sprintf("L'entreprise doit avoir une expertise en %s", domain),
			Selected:    true,
		})
	}

	return Analysis{
		Keywords:          fallbackKeywords(document),
		SelectionCriteria: criteria,
		AttributionCriteria: []AttributionCriterion{
			{ID: 1, Name: "Prix", Weight: 40},
			{ID: 2, Name: "Valeur technique", Weight: 40},
			{ID: 3, Name: "Délai d'exécution", Weight: 20},
		},
	}
}

// fallbackKeywords scans the document for known technical vocabulary.
func fallbackKeywords(document string) []string {
	if document == "" {
		return []string{"Projet", "Maintenance", "Consultation", "Technique"}
	}

	lower := strings.ToLower(document)
	keywords := []string{"Projet"}

	for _, tt := range technicalTerms {
		for _, pattern := range tt.patterns {
			if strings.Contains(lower, pattern) {
				keywords = append(keywords, tt.term)
				break
			}
		}
	}

	for _, site := range knownSites {
		if strings.Contains(lower, strings.ToLower(site)) {
			keywords = append(keywords, site)
			break
		}
	}

	if len(keywords) < 5 {
		for _, term := range []string{"Consultation", "Prestation", "Technique", "Industriel"} {
			if len(keywords) >= 8 {
				break
			}
			keywords = append(keywords, term)
		}
	}

	if len(keywords) > 10 {
		keywords = keywords[:10]
	}
	return keywords
}

// fallbackDomain detects the dominant specialty mentioned in the document,
// or "" when none stands out.
func fallbackDomain(document string) string {
	lower := strings.ToLower(document)
	for _, dt := range domainTerms {
		for _, pattern := range dt.patterns {
			if strings.Contains(lower, pattern) {
				return dt.domain
			}
		}
	}
	return ""
}
