package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/panel-entreprises/panelmatch"
)

// genericValues are cell contents that look like placeholders, not data.
var genericValues = map[string]bool{
	"oui": true, "non": true, "yes": true, "no": true,
	"n/a": true, "na": true, "nom": true, "name": true,
	"entreprise": true, "company": true, "valeur": true, "value": true,
}

func isGeneric(value string) bool {
	return genericValues[strings.ToLower(value)]
}

// legalForms are the company-type suffixes that mark a cell as a name.
var legalForms = []string{"sa", "sarl", "sas", "eurl", "sàrl", "sci", "scp", "snc", "sca", "scop", "gmbh", "ltd", "inc", "llc"}

func looksLikeCompanyName(value string) bool {
	if len(value) < 3 || len(value) > 100 {
		return false
	}
	hasCapitals := strings.ToLower(value) != value
	lower := " " + strings.ToLower(value) + " "
	hasLegalForm := false
	for _, form := range legalForms {
		if strings.Contains(lower, " "+form+" ") || strings.Contains(lower, "-"+form) {
			hasLegalForm = true
			break
		}
	}
	return len(value) > 4 && (hasCapitals || hasLegalForm)
}

func extractName(r row, mapping columnMapping) string {
	for _, i := range mapping[colName] {
		if v := r.at(i); v != "" && !isGeneric(v) {
			return v
		}
	}
	// Fallback: first cell that looks like a company name.
	name := ""
	r.each(func(_, value string) bool {
		if looksLikeCompanyName(value) {
			name = value
			return false
		}
		return true
	})
	return name
}

func extractDomain(r row, mapping columnMapping) string {
	for _, i := range mapping[colDomain] {
		if v := r.at(i); v != "" && !isGeneric(v) {
			return standardizeDomain(v)
		}
	}
	return panelmatch.DomainAutre
}

func extractLocation(r row, mapping columnMapping) string {
	for _, i := range mapping[colLocation] {
		if v := r.at(i); v != "" && !isGeneric(v) {
			return formatLocation(v)
		}
	}
	return panelmatch.NotSpecified
}

// certificationPatterns canonicalise the certification labels found in
// free-text cells.
var certificationPatterns = []struct {
	name     string
	patterns []string
}{
	{"MASE", []string{"mase"}},
	{"ISO 9001", []string{"iso 9001", "iso9001", "qualité", "qualite"}},
	{"ISO 14001", []string{"iso 14001", "iso14001", "environnement"}},
	{"ISO 45001", []string{"iso 45001", "iso45001", "sécurité", "securite"}},
	{"QUALIBAT", []string{"qualibat"}},
	{"QUALIFELEC", []string{"qualifelec"}},
	{"CEFRI", []string{"cefri"}},
	{"RGE", []string{"rge"}},
	{"ECOVADIS", []string{"ecovadis"}},
}

func extractCertifications(r row, mapping columnMapping) []string {
	var certs []string
	seen := map[string]bool{}

	collect := func(text string) {
		lower := strings.ToLower(text)
		for _, cp := range certificationPatterns {
			if seen[cp.name] {
				continue
			}
			for _, pattern := range cp.patterns {
				if strings.Contains(lower, pattern) {
					certs = append(certs, cp.name)
					seen[cp.name] = true
					break
				}
			}
		}
	}

	for _, i := range mapping[colCertifications] {
		if v := r.at(i); v != "" {
			collect(v)
		}
	}
	if len(certs) == 0 {
		r.each(func(_, value string) bool {
			collect(value)
			return true
		})
	}
	return certs
}

var numberPattern = regexp.MustCompile(`[\d.,]+`)

func extractCA(r row, mapping columnMapping) string {
	parse := func(v string) (string, bool) {
		compact := strings.ReplaceAll(v, " ", "")
		m := numberPattern.FindString(compact)
		if m == "" {
			return "", false
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
		if err != nil {
			return "", false
		}
		return formatCA(amount), true
	}

	for _, i := range mapping[colCA] {
		v := r.at(i)
		if v == "" {
			continue
		}
		if formatted, ok := parse(v); ok {
			return formatted
		}
		return v
	}

	result := panelmatch.NotSpecified
	r.each(func(header, value string) bool {
		lower := strings.ToLower(header)
		if !strings.Contains(lower, "ca") && !strings.Contains(lower, "chiffre") {
			return true
		}
		if formatted, ok := parse(value); ok {
			result = formatted
			return false
		}
		return true
	})
	return result
}

// formatCA renders an amount as M€, k€ or € depending on magnitude.
func formatCA(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("%.1fM€", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("%.0fk€", amount/1_000)
	default:
		return fmt.Sprintf("%.0f€", amount)
	}
}

var digitsPattern = regexp.MustCompile(`\d+`)

func extractEmployees(r row, mapping columnMapping) string {
	for _, i := range mapping[colEmployees] {
		v := r.at(i)
		if v == "" {
			continue
		}
		if m := digitsPattern.FindString(v); m != "" {
			return m
		}
		return v
	}

	result := panelmatch.NotSpecified
	r.each(func(header, value string) bool {
		lower := strings.ToLower(header)
		if !strings.Contains(lower, "effectif") && !strings.Contains(lower, "salarié") && !strings.Contains(lower, "employé") {
			return true
		}
		if m := digitsPattern.FindString(value); m != "" {
			result = m
			return false
		}
		return true
	})
	return result
}

var (
	emailPattern     = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneHintPattern = regexp.MustCompile(`[\d\s.]{8,}`)
	frenchPhone      = regexp.MustCompile(`(0|\+33)\s*[1-9](\s*\d{2}){4}`)
)

func extractContact(r row, mapping columnMapping) *panelmatch.Contact {
	contact := panelmatch.Contact{}

	for _, i := range mapping[colEmail] {
		v := r.at(i)
		if strings.Contains(v, "@") && strings.Contains(v, ".") {
			contact.Email = v
			break
		}
	}
	for _, i := range mapping[colPhone] {
		v := r.at(i)
		if v != "" && phoneHintPattern.MatchString(v) {
			contact.Phone = formatPhone(v)
			break
		}
	}

	if contact.Email == "" {
		r.each(func(_, value string) bool {
			if m := emailPattern.FindString(value); m != "" {
				contact.Email = m
				return false
			}
			return true
		})
	}
	// A phone without any other contact data is usually a false positive.
	if contact.Phone == "" && contact.Email != "" {
		r.each(func(_, value string) bool {
			if frenchPhone.MatchString(value) {
				contact.Phone = formatPhone(value)
				return false
			}
			return true
		})
	}

	if contact.Email == "" && contact.Phone == "" {
		return nil
	}
	return &contact
}

var nonDigits = regexp.MustCompile(`\D`)

// formatPhone normalises French numbers to the "01 23 45 67 89" layout.
func formatPhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")

	switch {
	case len(digits) == 10 && strings.HasPrefix(digits, "0"):
		// Already national format.
	case len(digits) > 10 && strings.HasPrefix(digits, "0033"):
		digits = "0" + digits[4:]
	case len(digits) > 10 && strings.HasPrefix(digits, "33"):
		digits = "0" + digits[2:]
	default:
		return phone
	}

	if len(digits) != 10 {
		return phone
	}
	pairs := make([]string, 0, 5)
	for i := 0; i < 10; i += 2 {
		pairs = append(pairs, digits[i:i+2])
	}
	return strings.Join(pairs, " ")
}

func extractExperience(r row, mapping columnMapping) string {
	for _, i := range mapping[colExperience] {
		if v := r.at(i); len(v) > 10 {
			return v
		}
	}

	result := panelmatch.NotSpecified
	r.each(func(header, value string) bool {
		lower := strings.ToLower(header)
		if strings.Contains(lower, "expérience") || strings.Contains(lower, "référence") || strings.Contains(lower, "historique") {
			if len(value) > 10 {
				result = value
				return false
			}
		}
		return true
	})
	return result
}

func extractContracts(r row, mapping columnMapping) []panelmatch.Contract {
	var contracts []panelmatch.Contract
	for _, i := range mapping[colContracts] {
		if v := r.at(i); len(v) > 5 {
			contracts = append(contracts, panelmatch.Contract{Type: "Contrat", Description: v})
		}
	}
	if len(contracts) > 0 {
		return contracts
	}

	contractHints := []string{"contrat", "marché", "marche", "lot", "prestation", "projet", "affaire", "commande"}
	r.each(func(header, value string) bool {
		lower := strings.ToLower(header)
		for _, hint := range contractHints {
			if strings.Contains(lower, hint) && len(value) > 5 {
				contracts = append(contracts, panelmatch.Contract{Type: header, Description: value})
				break
			}
		}
		return true
	})
	return contracts
}

func extractCapabilities(r row, mapping columnMapping) []string {
	var caps []string
	seen := map[string]bool{}
	for _, i := range mapping[colCapabilities] {
		if v := r.at(i); len(v) > 5 && !seen[v] {
			caps = append(caps, v)
			seen[v] = true
		}
	}
	return caps
}
