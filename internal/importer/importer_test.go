package importer

import (
	"strings"
	"testing"

	"github.com/panel-entreprises/panelmatch"
)

const sampleCSV = `Raison sociale;Domaine d'activité;Ville;Habilitations;CA annuel;Effectif;Email;Téléphone;Références;Marchés
Hydro Services SARL;Tuyauterie industrielle;Chooz 08600;MASE, ISO 9001;2500000;45;contact@hydroservices.fr;0324561234;15 ans de maintenance hydraulique en centrale;Remplacement d'échangeurs thermiques
Électricité Grand Est;;Strasbourg 67000;;1,2;12;;;;
;;;;;;;;;
BTP Provence SAS;Génie civil;Marseille 13008;QUALIBAT;800000;120;info@btp-provence.fr;04 91 22 33 44;Construction de bâtiments industriels;Gros œuvre site pétrochimique
`

func TestLoad_ParsesCompanies(t *testing.T) {
	im := New(nil)
	companies, err := im.Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(companies) != 3 {
		t.Fatalf("got %d companies, want 3 (empty row skipped)", len(companies))
	}

	hydro := companies[0]
	if hydro.ID != "ENT_001" {
		t.Errorf("id = %s, want ENT_001", hydro.ID)
	}
	if hydro.Name != "Hydro Services SARL" {
		t.Errorf("name = %s", hydro.Name)
	}
	if hydro.Domain != panelmatch.DomainHydraulique {
		t.Errorf("domain = %s, want %s", hydro.Domain, panelmatch.DomainHydraulique)
	}
	if hydro.Location != "Chooz, Ardennes (08)" {
		t.Errorf("location = %s, want 'Chooz, Ardennes (08)'", hydro.Location)
	}
	if hydro.GeoZone != "Ardennes" {
		t.Errorf("geo zone = %s, want Ardennes", hydro.GeoZone)
	}
	if hydro.CA != "2.5M€" {
		t.Errorf("ca = %s, want 2.5M€", hydro.CA)
	}
	if hydro.Employees != "45" {
		t.Errorf("employees = %s, want 45", hydro.Employees)
	}
	if len(hydro.Certifications) != 2 || hydro.Certifications[0] != "MASE" || hydro.Certifications[1] != "ISO 9001" {
		t.Errorf("certifications = %v, want [MASE ISO 9001]", hydro.Certifications)
	}
	if hydro.Contact == nil || hydro.Contact.Email != "contact@hydroservices.fr" {
		t.Errorf("contact = %+v, want hydroservices email", hydro.Contact)
	}
	if hydro.Contact != nil && hydro.Contact.Phone != "03 24 56 12 34" {
		t.Errorf("phone = %s, want '03 24 56 12 34'", hydro.Contact.Phone)
	}
	if len(hydro.Contracts) == 0 {
		t.Error("contracts empty, want the marchés column captured")
	}
}

func TestLoad_InfersMissingDomainFromName(t *testing.T) {
	im := New(nil)
	companies, err := im.Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	elec := companies[1]
	if elec.Name != "Électricité Grand Est" {
		t.Fatalf("second company = %s", elec.Name)
	}
	if elec.Domain != panelmatch.DomainElectricite {
		t.Errorf("domain = %s, want inferred %s", elec.Domain, panelmatch.DomainElectricite)
	}
}

func TestLoad_GeneratesKeywords(t *testing.T) {
	im := New(nil)
	companies, err := im.Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kw := map[string]bool{}
	for _, k := range companies[0].Keywords {
		kw[k] = true
	}
	for _, want := range []string{"hydraulique", "mase", "sécurité", "ardennes"} {
		if !kw[want] {
			t.Errorf("keywords %v missing %q", companies[0].Keywords, want)
		}
	}
}

func TestLoad_CommaDelimited(t *testing.T) {
	csv := "Entreprise,Ville\nMécanique Précision SAS,Lyon 69003\n"
	im := New(nil)
	companies, err := im.Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(companies) != 1 {
		t.Fatalf("got %d companies, want 1", len(companies))
	}
	if companies[0].Domain != panelmatch.DomainMecanique {
		t.Errorf("domain = %s, want inferred %s", companies[0].Domain, panelmatch.DomainMecanique)
	}
	if companies[0].GeoZone != "Sud-Est" {
		t.Errorf("geo zone = %s, want Sud-Est", companies[0].GeoZone)
	}
}

func TestLoad_EmptyDataset(t *testing.T) {
	im := New(nil)
	if _, err := im.Load(strings.NewReader("Entreprise;Ville\n")); err == nil {
		t.Fatal("expected error for dataset without data rows")
	}
}

func TestStandardizeDomain(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Tuyauterie et robinetterie", panelmatch.DomainHydraulique},
		{"Électricité générale", panelmatch.DomainElectricite},
		{"Usinage de précision", panelmatch.DomainMecanique},
		{"génie civil", panelmatch.DomainBatiment},
		{"Entretien de sites", panelmatch.DomainMaintenance},
		{"logistique", "Logistique"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := standardizeDomain(tt.raw); got != tt.want {
				t.Errorf("standardizeDomain(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestInferDomainFromText_WeightedScores(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", panelmatch.DomainAutre},
		{"clear hydraulics", "remplacement d'échangeur et circuit hydraulique sous pression", panelmatch.DomainHydraulique},
		{"maintenance wins over weak mentions", "maintenance et entretien avec dépannage, intervention sur machine", panelmatch.DomainMaintenance},
		{"nothing relevant", "conseil en stratégie financière", panelmatch.DomainAutre},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inferDomainFromText(tt.text); got != tt.want {
				t.Errorf("inferDomainFromText(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatCA(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{2500000, "2.5M€"},
		{1000000, "1.0M€"},
		{800000, "800k€"},
		{1500, "2k€"},
		{750, "750€"},
	}
	for _, tt := range tests {
		if got := formatCA(tt.amount); got != tt.want {
			t.Errorf("formatCA(%g) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"0324561234", "03 24 56 12 34"},
		{"03.24.56.12.34", "03 24 56 12 34"},
		{"+33 3 24 56 12 34", "03 24 56 12 34"},
		{"0033324561234", "03 24 56 12 34"},
		{"12345", "12345"},
	}
	for _, tt := range tests {
		if got := formatPhone(tt.raw); got != tt.want {
			t.Errorf("formatPhone(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Chooz 08600", "Chooz, Ardennes (08)"},
		{"69003", "Rhône (69)"},
		{"Lyon", "Lyon"},
		{"Marseille 13008", "Marseille, Bouches-du-Rhône (13)"},
	}
	for _, tt := range tests {
		if got := formatLocation(tt.raw); got != tt.want {
			t.Errorf("formatLocation(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestDetermineGeoZone(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{panelmatch.NotSpecified, panelmatch.NotSpecified},
		{"Chooz, Ardennes (08)", "Ardennes"},
		{"Paris 15e", "Ile-de-France"},
		{"Strasbourg, Bas-Rhin (67)", "Est"},
		{"Brive-la-Gaillarde", "France"},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if got := determineGeoZone(tt.location); got != tt.want {
				t.Errorf("determineGeoZone(%q) = %s, want %s", tt.location, got, tt.want)
			}
		})
	}
}
