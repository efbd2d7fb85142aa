package importer

import "strings"

// Column roles recognised in dataset headers.
const (
	colName           = "company_name"
	colDomain         = "domain"
	colLocation       = "location"
	colCertifications = "certifications"
	colCA             = "ca"
	colEmployees      = "employees"
	colEmail          = "email"
	colPhone          = "phone"
	colExperience     = "experience"
	colContracts      = "contracts"
	colCapabilities   = "capabilities"
)

// columnPatterns maps each role to the header substrings that announce it.
var columnPatterns = map[string][]string{
	colName:           {"nom", "raison sociale", "société", "societe", "entreprise", "prestataire", "titulaire"},
	colDomain:         {"domaine", "activité", "activite", "métier", "metier", "spécialité", "specialite", "secteur"},
	colLocation:       {"localisation", "lieu", "adresse", "ville", "commune", "département", "departement", "région", "region", "code postal"},
	colCertifications: {"certification", "qualif", "habilitation", "norme", "mase", "iso"},
	colCA:             {"ca", "chiffre", "affaire", "revenu", "turnover"},
	colEmployees:      {"effectif", "employé", "employe", "salarié", "salarie", "personnel"},
	colEmail:          {"email", "mail", "courriel", "contact"},
	colPhone:          {"téléphone", "telephone", "tel", "contact", "portable", "mobile"},
	colExperience:     {"expérience", "experience", "référence", "reference", "antécédent", "antecedent", "historique"},
	colContracts:      {"contrat", "marché", "marche", "lot", "prestation", "projet"},
	colCapabilities:   {"capacité", "capacite", "compétence", "competence", "savoir", "expertise", "ressource", "moyen"},
}

// columnMapping lists, per role, the header indexes that matched.
type columnMapping map[string][]int

// identifyColumns matches headers against the role patterns. A header can
// serve several roles ("contact" is both email and phone).
func identifyColumns(headers []string) columnMapping {
	mapping := make(columnMapping, len(columnPatterns))
	for i, header := range headers {
		lower := strings.ToLower(header)
		for role, patterns := range columnPatterns {
			for _, pattern := range patterns {
				if strings.Contains(lower, pattern) {
					mapping[role] = append(mapping[role], i)
					break
				}
			}
		}
	}
	return mapping
}

// row pairs a record with its headers for lookup by column index.
type row struct {
	headers []string
	values  []string
}

func newRow(headers, values []string) row {
	return row{headers: headers, values: values}
}

// at returns the trimmed cell at index i, or "" when the record is short.
func (r row) at(i int) string {
	if i < 0 || i >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[i])
}

// each calls fn for every non-empty cell with its header.
func (r row) each(fn func(header, value string) bool) {
	for i := range r.values {
		v := r.at(i)
		if v == "" {
			continue
		}
		header := ""
		if i < len(r.headers) {
			header = r.headers[i]
		}
		if !fn(header, v) {
			return
		}
	}
}
