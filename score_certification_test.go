package panelmatch

import "testing"

func TestScoreCertification_NamedIsBinary(t *testing.T) {
	criterion := Criterion{Name: "Certification MASE requise", Selected: true}

	holder := Company{ID: "E1", Name: "Hydro Services", Certifications: []string{"MASE"}}
	if got := scoreCertification(&holder, criterion); got != 100 {
		t.Errorf("holder score = %d, want 100", got)
	}

	empty := Company{ID: "E2", Name: "BTP Sud"}
	if got := scoreCertification(&empty, criterion); got != 0 {
		t.Errorf("non-holder score = %d, want 0", got)
	}

	other := Company{ID: "E3", Name: "Elec Nord", Certifications: []string{"ISO 9001"}}
	if got := scoreCertification(&other, criterion); got != 0 {
		t.Errorf("wrong-cert score = %d, want 0", got)
	}
}

func TestScoreCertification_NamedInDescription(t *testing.T) {
	criterion := Criterion{
		Name:        "Certification sécurité",
		Description: "certification MASE exigée pour intervenir sur site",
	}
	c := Company{Certifications: []string{"MASE", "ISO 9001"}}
	if got := scoreCertification(&c, criterion); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestScoreCertification_ISOQualityPhrasing(t *testing.T) {
	// "ISO" in the name plus "qualité" in the description names ISO 9001.
	criterion := Criterion{Name: "Norme ISO", Description: "système qualité certifié"}

	holder := Company{Certifications: []string{"ISO 9001"}}
	if got := scoreCertification(&holder, criterion); got != 100 {
		t.Errorf("ISO 9001 holder = %d, want 100", got)
	}

	nonHolder := Company{Certifications: []string{"MASE"}}
	if got := scoreCertification(&nonHolder, criterion); got != 0 {
		t.Errorf("non-holder = %d, want 0", got)
	}
}

func TestScoreCertification_GenericCountsCertifications(t *testing.T) {
	criterion := Criterion{Name: "Certifications de l'entreprise"}

	tests := []struct {
		certs []string
		want  int
	}{
		{[]string{"RGE"}, 30},
		{[]string{"RGE", "QUALIBAT"}, 60},
		{[]string{"RGE", "QUALIBAT", "ECOVADIS"}, 90},
		{[]string{"RGE", "QUALIBAT", "ECOVADIS", "MASE"}, 90}, // capped
	}
	for _, tt := range tests {
		c := Company{Certifications: tt.certs}
		if got := scoreCertification(&c, criterion); got != tt.want {
			t.Errorf("%d certs: score = %d, want %d", len(tt.certs), got, tt.want)
		}
	}
}

func TestScoreCertification_UnclearRequirementPartial(t *testing.T) {
	// Criterion classified as certification via "qualif" but naming nothing.
	criterion := Criterion{Name: "Qualification du personnel"}
	c := Company{Certifications: []string{"MASE"}}
	if got := scoreCertification(&c, criterion); got != 50 {
		t.Errorf("score = %d, want 50", got)
	}
}

func TestScoreCertification_NoCertifications(t *testing.T) {
	c := Company{Name: "Sans Certif"}
	for _, criterion := range []Criterion{
		{Name: "Certification MASE"},
		{Name: "Certifications"},
		{Name: "Qualification"},
	} {
		if got := scoreCertification(&c, criterion); got != 0 {
			t.Errorf("%q: score = %d, want 0", criterion.Name, got)
		}
	}
}
