package panelmatch

import (
	"fmt"
	"testing"
)

func match(id string, score int, domain, zone string) MatchResult {
	return MatchResult{
		Company:  Company{ID: id, Name: id, Domain: domain, GeoZone: zone},
		Score:    score,
		Selected: true,
	}
}

func TestSelectResults_MinScoreInclusive(t *testing.T) {
	matches := []MatchResult{
		match("below", 59, DomainMaintenance, "Est"),
		match("boundary", 60, DomainMaintenance, "Est"),
		match("above", 61, DomainMaintenance, "Est"),
	}

	got := selectResults(matches, 60, 10)

	if len(got) != 2 {
		t.Fatalf("kept %d results, want 2", len(got))
	}
	for _, m := range got {
		if m.Score < 60 {
			t.Errorf("result %s scored %d, below the threshold", m.ID, m.Score)
		}
	}
	if got[0].ID != "above" || got[1].ID != "boundary" {
		t.Errorf("order = [%s %s], want [above boundary]", got[0].ID, got[1].ID)
	}
}

func TestSelectResults_StableOnTies(t *testing.T) {
	matches := []MatchResult{
		match("first", 80, DomainMaintenance, "Est"),
		match("second", 80, DomainMaintenance, "Est"),
		match("third", 80, DomainMaintenance, "Est"),
	}

	got := selectResults(matches, 60, 10)

	for i, want := range []string{"first", "second", "third"} {
		if got[i].ID != want {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestSelectResults_NoTruncationBelowCap(t *testing.T) {
	matches := []MatchResult{
		match("a", 90, DomainMaintenance, "Est"),
		match("b", 85, DomainBatiment, "Sud"),
	}
	if got := selectResults(matches, 60, 10); len(got) != 2 {
		t.Errorf("kept %d results, want all 2", len(got))
	}
}

func TestDiversify_InjectsMinorityDomain(t *testing.T) {
	matches := make([]MatchResult, 0, 20)
	for i := 0; i < 18; i++ {
		matches = append(matches, match(fmt.Sprintf("maint-%02d", i), 90, DomainMaintenance, "Est"))
	}
	matches = append(matches,
		match("elec-01", 90, DomainElectricite, "Sud"),
		match("elec-02", 90, DomainElectricite, "Sud"),
	)

	got := selectResults(matches, 60, 5)

	if len(got) != 5 {
		t.Fatalf("kept %d results, want 5", len(got))
	}
	electric := 0
	for _, m := range got {
		if m.Domain == DomainElectricite {
			electric++
		}
	}
	if electric == 0 {
		t.Errorf("shortlist %v has no %s company", ids(got), DomainElectricite)
	}
}

func TestDiversify_TopRanksAlwaysSurvive(t *testing.T) {
	matches := []MatchResult{
		match("best", 99, DomainMaintenance, "Est"),
		match("runner-up", 98, DomainMaintenance, "Est"),
		match("third", 97, DomainMaintenance, "Est"),
		match("outsider", 70, DomainElectricite, "Sud"),
		match("fifth", 96, DomainMaintenance, "Est"),
		match("sixth", 95, DomainMaintenance, "Est"),
		match("seventh", 94, DomainMaintenance, "Est"),
		match("eighth", 93, DomainMaintenance, "Est"),
	}

	got := selectResults(matches, 60, 6)

	if len(got) != 6 {
		t.Fatalf("kept %d results, want 6", len(got))
	}
	for i, want := range []string{"best", "runner-up", "third"} {
		if got[i].ID != want {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, want)
		}
	}
	found := false
	for _, m := range got {
		if m.ID == "outsider" {
			found = true
		}
	}
	if !found {
		t.Errorf("shortlist %v misses the only diverse candidate", ids(got))
	}
}

func ids(results []MatchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}
