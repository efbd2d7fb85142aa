package panelmatch

import "testing"

func TestScoreGeographic(t *testing.T) {
	choozCriterion := Criterion{Name: "Zone Chooz", Description: "intervention à Chooz"}

	tests := []struct {
		name      string
		company   Company
		criterion Criterion
		want      int
	}{
		{
			"exact region via location",
			Company{Location: "Chooz, Ardennes (08)", GeoZone: "Ardennes"},
			choozCriterion,
			100,
		},
		{
			"exact region via geo zone",
			Company{Location: "Charleville-Mézières", GeoZone: "Ardennes"},
			choozCriterion,
			100,
		},
		{
			"neighboring region",
			Company{Location: "Metz", GeoZone: "Est"},
			choozCriterion,
			70,
		},
		{
			"national company",
			Company{Location: "Lyon", GeoZone: "France"},
			choozCriterion,
			60,
		},
		{
			"no match at all",
			Company{Location: "Charleville-Mézières", GeoZone: "Ardennes"},
			Criterion{Name: "Localisation Ile-de-France", Description: "proximité de Paris"},
			0,
		},
		{
			"compound zone counts as neighboring",
			Company{Location: "Marseille", GeoZone: "Sud-Est"},
			Criterion{Name: "Localisation Ile-de-France", Description: "proximité de Paris"},
			70,
		},
		{
			"no region named means national scope",
			Company{Location: "Bordeaux", GeoZone: "Sud-Ouest"},
			Criterion{Name: "Zone d'intervention", Description: "déplacements possibles"},
			80,
		},
		{
			"unknown location is weak but not disqualifying",
			Company{Location: NotSpecified, GeoZone: NotSpecified},
			choozCriterion,
			30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreGeographic(&tt.company, tt.criterion); got != tt.want {
				t.Errorf("scoreGeographic = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreGeographic_SelectedDepartments(t *testing.T) {
	criterion := Criterion{
		Name:                "Départements d'intervention",
		SelectedDepartments: []string{"Ardennes", "08"},
	}

	inDept := Company{Location: "Sedan, Ardennes (08)", GeoZone: "Ardennes"}
	if got := scoreGeographic(&inDept, criterion); got != 100 {
		t.Errorf("in-department score = %d, want 100", got)
	}

	national := Company{Location: "Paris", GeoZone: "France"}
	if got := scoreGeographic(&national, criterion); got != 60 {
		t.Errorf("national score = %d, want 60", got)
	}

	outside := Company{Location: "Toulouse", GeoZone: "Sud-Ouest"}
	if got := scoreGeographic(&outside, criterion); got != 0 {
		t.Errorf("outside score = %d, want 0", got)
	}
}
