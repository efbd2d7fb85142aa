package panelmatch

import (
	"regexp"
	"strconv"
	"strings"
)

// Size brackets for the blended capacity score. Monotonically increasing:
// bigger companies carry more generic capacity.
var (
	revenueBrackets = []struct {
		below float64
		score int
	}{
		{500_000, 30},
		{1_000_000, 45},
		{2_000_000, 60},
		{5_000_000, 75},
		{10_000_000, 85},
	}
	employeeBrackets = []struct {
		below int
		score int
	}{
		{5, 30},
		{10, 45},
		{25, 60},
		{50, 75},
		{100, 85},
	}
)

const (
	capacityTopScore = 95
	capacityUnknown  = 50
)

// Explicit size requirements a criterion can state.
var sizeRequirementKeywords = []struct {
	size     string
	keywords []string
}{
	{"petite", []string{"petite", "small", "tpe", "<10", "moins de 10"}},
	{"moyenne", []string{"moyenne", "medium", "pme", "10-50", "entre 10 et 50"}},
	{"grande", []string{"grande", "large", "eti", ">50", "plus de 50", "importante"}},
}

var caRequirementKeywords = []struct {
	size     string
	keywords []string
}{
	{"petit", []string{"petit ca", "petit chiffre", "<500k", "moins de 500k"}},
	{"moyen", []string{"moyen ca", "moyen chiffre", "500k-2m", "entre 500k et 2m"}},
	{"grand", []string{"grand ca", "grand chiffre", ">2m", "plus de 2m"}},
}

var (
	digitRunPattern = regexp.MustCompile(`\d+`)
	amountPattern   = regexp.MustCompile(`(\d+(?:[.,]\d+)?)`)
)

// scoreCapacity rates a capacity criterion. When the criterion states an
// explicit size or revenue requirement it is matched against the company
// bracket with full credit for an exact fit and decreasing partial credit
// for over- or under-shoot. Otherwise the score blends the revenue bracket
// (60%) and the employee bracket (40%), plus up to 20 points of
// contract-history volume.
func scoreCapacity(company *Company, criterion Criterion) int {
	name, desc := criterionText(criterion)

	employees, hasEmployees := parseEmployeeCount(company.Employees)
	revenue, hasRevenue := parseRevenue(company.CA)

	if size := statedRequirement(name, desc, sizeRequirementKeywords); size != "" && hasEmployees {
		return matchSizeRequirement(size, employees)
	}
	if size := statedRequirement(name, desc, caRequirementKeywords); size != "" && hasRevenue {
		return matchRevenueRequirement(size, revenue)
	}

	revenueScore := capacityUnknown
	if hasRevenue {
		revenueScore = bracketRevenue(revenue)
	}
	employeeScore := capacityUnknown
	if hasEmployees {
		employeeScore = bracketEmployees(employees)
	}

	score := int(float64(revenueScore)*0.6 + float64(employeeScore)*0.4)
	score += min(20, len(company.Contracts)*5)

	return clamp100(score)
}

func statedRequirement(name, desc string, table []struct {
	size     string
	keywords []string
}) string {
	for _, entry := range table {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) || strings.Contains(desc, kw) {
				return entry.size
			}
		}
	}
	return ""
}

func matchSizeRequirement(size string, employees int) int {
	switch size {
	case "petite":
		switch {
		case employees < 10:
			return 100
		case employees <= 20:
			return 70
		default:
			return 30
		}
	case "moyenne":
		switch {
		case employees >= 10 && employees <= 50:
			return 100
		case employees < 10:
			return 50
		default:
			return 70
		}
	default: // grande
		switch {
		case employees > 50:
			return 100
		case employees >= 20:
			return 60
		default:
			return 30
		}
	}
}

func matchRevenueRequirement(size string, revenue float64) int {
	switch size {
	case "petit":
		switch {
		case revenue < 500_000:
			return 100
		case revenue <= 1_000_000:
			return 70
		default:
			return 40
		}
	case "moyen":
		switch {
		case revenue >= 500_000 && revenue <= 2_000_000:
			return 100
		case revenue < 500_000:
			return 60
		default:
			return 80
		}
	default: // grand
		switch {
		case revenue > 2_000_000:
			return 100
		case revenue >= 1_000_000:
			return 70
		default:
			return 30
		}
	}
}

func bracketRevenue(revenue float64) int {
	for _, b := range revenueBrackets {
		if revenue < b.below {
			return b.score
		}
	}
	return capacityTopScore
}

func bracketEmployees(employees int) int {
	for _, b := range employeeBrackets {
		if employees < b.below {
			return b.score
		}
	}
	return capacityTopScore
}

// parseEmployeeCount extracts the first digit run of a free-text headcount.
func parseEmployeeCount(employees string) (int, bool) {
	if !known(employees) {
		return 0, false
	}
	run := digitRunPattern.FindString(employees)
	if run == "" {
		return 0, false
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseRevenue converts a formatted CA string ("2.5M€", "750k€", "400€")
// to euros. Parsing failure is reported, never raised.
func parseRevenue(ca string) (float64, bool) {
	if !known(ca) {
		return 0, false
	}
	raw := amountPattern.FindString(strings.ReplaceAll(ca, " ", ""))
	if raw == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	lower := strings.ToLower(ca)
	switch {
	case strings.Contains(lower, "m€"):
		amount *= 1_000_000
	case strings.Contains(lower, "k€"):
		amount *= 1_000
	}
	return amount, true
}
