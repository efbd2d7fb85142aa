package panelmatch

import "strings"

// namedCertifications are the certifications a criterion can require by
// name. A named requirement is binary: the company either holds it or
// scores zero. The match functions take lowercased criterion name and
// description; held patterns are matched against lowercased labels.
var namedCertifications = []struct {
	required func(name, desc string) bool
	pattern  string
}{
	{
		required: func(name, desc string) bool {
			return strings.Contains(name, "mase") || strings.Contains(desc, "mase")
		},
		pattern: "mase",
	},
	{
		required: func(name, desc string) bool {
			return strings.Contains(name, "iso 9001") || strings.Contains(desc, "iso 9001") ||
				(strings.Contains(name, "iso") && strings.Contains(desc, "qualité"))
		},
		pattern: "iso 9001",
	},
	{
		required: func(name, desc string) bool {
			return strings.Contains(name, "iso 14001") || strings.Contains(desc, "iso 14001") ||
				(strings.Contains(name, "iso") && strings.Contains(desc, "environnement"))
		},
		pattern: "iso 14001",
	},
	{
		required: func(name, desc string) bool {
			return strings.Contains(name, "cefri") || strings.Contains(desc, "cefri") ||
				(strings.Contains(desc, "nucléaire") && strings.Contains(name, "certification"))
		},
		pattern: "cefri",
	},
	{
		required: func(name, desc string) bool {
			return strings.Contains(name, "qualibat") || strings.Contains(desc, "qualibat")
		},
		pattern: "qualibat",
	},
}

// scoreCertification rates a certification criterion. A certification named
// in the criterion is pass/fail; a generic "certification" requirement is
// scored by how many certifications the company holds.
func scoreCertification(company *Company, criterion Criterion) int {
	if len(company.Certifications) == 0 {
		return 0
	}

	certs := make([]string, len(company.Certifications))
	for i, cert := range company.Certifications {
		certs[i] = strings.ToLower(cert)
	}

	name, desc := criterionText(criterion)

	for _, named := range namedCertifications {
		if !named.required(name, desc) {
			continue
		}
		for _, cert := range certs {
			if strings.Contains(cert, named.pattern) {
				return 100
			}
		}
		return 0
	}

	// Generic requirement: any certifications count. A name that mentions a
	// certification family without a recognized match is not generic.
	if strings.Contains(name, "certification") &&
		!strings.Contains(name, "mase") && !strings.Contains(name, "iso") && !strings.Contains(name, "cefri") {
		return min(90, len(certs)*30)
	}

	// Has certifications, but the requirement is unclear.
	return 50
}
