// Package panelmatch scores and ranks candidate companies against the
// weighted selection criteria of a small industrial tender.
//
// The entry point is Engine.Match: it classifies each criterion into a
// semantic category, scores every company against every selected criterion
// with a category-specific heuristic, aggregates the scores with
// category-derived weights plus a data-completeness bonus, and returns a
// filtered, diversity-aware shortlist. The whole pipeline is pure: no I/O,
// no randomness, no mutation of its inputs.
package panelmatch

import "strings"

// NotSpecified is the sentinel the company suppliers use for every unknown
// free-text field. The scorers only recognize this sentinel; empty strings
// coming from hand-built records are treated the same way.
const NotSpecified = "Non spécifié"

// Company activity domains. Anything outside the fixed vocabulary is
// normalized to DomainAutre by the supplier.
const (
	DomainElectricite = "Électricité"
	DomainMecanique   = "Mécanique"
	DomainHydraulique = "Hydraulique"
	DomainBatiment    = "Bâtiment"
	DomainMaintenance = "Maintenance"
	DomainAutre       = "Autre"
)

// Contract is one entry of a company's contract history.
type Contract struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Contact holds optional reachability details.
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Company is a registry record as supplied by the importer or manual CRUD.
// Every field except ID and Name may be unknown; unknown free-text fields
// carry the NotSpecified sentinel rather than an empty string.
type Company struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Domain         string     `json:"domain"`
	Location       string     `json:"location"`
	GeoZone        string     `json:"geo_zone"`
	Certifications []string   `json:"certifications"`
	CA             string     `json:"ca"`
	Employees      string     `json:"employees"`
	Experience     string     `json:"experience"`
	Contracts      []Contract `json:"lots_marches"`
	Capabilities   []string   `json:"capabilities"`
	Keywords       []string   `json:"keywords"`
	Contact        *Contact   `json:"contact,omitempty"`
}

// MatchResult is a scored company: the original record plus the aggregated
// score, the per-criterion sub-scores keyed by criterion name, and a
// UI convenience flag.
type MatchResult struct {
	Company

	Score        int            `json:"score"`
	MatchDetails map[string]int `json:"matchDetails"`
	Selected     bool           `json:"selected"`
}

// known reports whether a free-text field carries an actual value.
func known(field string) bool {
	return field != "" && !strings.EqualFold(field, NotSpecified)
}

// profile concatenates every descriptive field of the company into a single
// lowercased text used by the generic scorer.
func (c *Company) profile() string {
	parts := make([]string, 0, 8+len(c.Contracts)+len(c.Capabilities)+len(c.Keywords))
	parts = append(parts, c.Name, c.Domain)
	parts = append(parts, c.Certifications...)
	if known(c.Experience) {
		parts = append(parts, c.Experience)
	}
	for _, contract := range c.Contracts {
		parts = append(parts, contract.Description)
	}
	parts = append(parts, c.Capabilities...)
	parts = append(parts, c.Keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}

// keywordSet returns the company keywords as a lookup set.
func (c *Company) keywordSet() map[string]bool {
	if len(c.Keywords) == 0 {
		return nil
	}
	set := make(map[string]bool, len(c.Keywords))
	for _, kw := range c.Keywords {
		set[strings.ToLower(kw)] = true
	}
	return set
}
