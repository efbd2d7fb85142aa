package mistral

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/panel-entreprises/panelmatch/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterExtractionMetrics()
	os.Exit(m.Run())
}

const longDocument = `Cahier des charges pour la maintenance préventive des échangeurs thermiques à plaques
de la centrale. Les prestations comprennent le démontage, le nettoyage et le remontage des
échangeurs du circuit de refroidissement, dans le respect des consignes de sécurité du site.`

// chatResponse builds an OpenAI-compatible chat completion answer.
func chatResponse(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"choices": []map[string]any{
			{
				"index":   0,
				"message": map[string]any{"role": "assistant", "content": content},
			},
		},
	}
}

func newTestAnalyzer(t *testing.T, handler http.HandlerFunc) *Analyzer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAnalyzer(&Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Model:   "mistral-small-latest",
	})
}

func TestAnalyzer_Analyze(t *testing.T) {
	answer := "Voici l'analyse :\n```json\n" + `{
		"keywords": ["échangeur", "maintenance", "thermique"],
		"selectionCriteria": [
			{"id": 1, "name": "Certification MASE", "description": "Certification obligatoire", "selected": true},
			{"name": "Compétence échangeurs", "description": "Expertise en échangeurs à plaques"}
		],
		"attributionCriteria": [
			{"id": 1, "name": "Prix", "weight": 30},
			{"id": 2, "name": "Valeur technique", "weight": 30},
			{"id": 3, "name": "Délai", "weight": 30}
		]
	}` + "\n```"

	analyzer := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", r.Header.Get("Authorization"))
		}
		_ = json.NewEncoder(w).Encode(chatResponse(answer))
	})

	analysis := analyzer.Analyze(context.Background(), longDocument)

	if len(analysis.Keywords) != 3 {
		t.Errorf("keywords = %v, want 3 entries", analysis.Keywords)
	}
	if len(analysis.SelectionCriteria) != 2 {
		t.Fatalf("got %d selection criteria, want 2", len(analysis.SelectionCriteria))
	}

	second := analysis.SelectionCriteria[1]
	if second.ID != 2 {
		t.Errorf("repaired id = %d, want 2", second.ID)
	}
	if !second.Selected {
		t.Error("selected flag should default to true")
	}

	// 30+30+30 rescales to 33+33+33, the first criterion absorbs the rest.
	weights := []int{analysis.AttributionCriteria[0].Weight, analysis.AttributionCriteria[1].Weight, analysis.AttributionCriteria[2].Weight}
	total := weights[0] + weights[1] + weights[2]
	if total != 100 {
		t.Errorf("weights %v total %d, want 100", weights, total)
	}
	if weights[0] != 34 || weights[1] != 33 || weights[2] != 33 {
		t.Errorf("weights = %v, want [34 33 33]", weights)
	}
}

func TestAnalyzer_ShortDocumentUsesFallback(t *testing.T) {
	calls := 0
	analyzer := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(chatResponse("{}"))
	})

	analysis := analyzer.Analyze(context.Background(), "Trop court.")

	if calls != 0 {
		t.Errorf("provider called %d times for a short document, want 0", calls)
	}
	if len(analysis.SelectionCriteria) < 4 {
		t.Errorf("fallback produced %d criteria, want the default set", len(analysis.SelectionCriteria))
	}
	for _, c := range analysis.SelectionCriteria {
		if !c.Selected {
			t.Errorf("fallback criterion %q not selected", c.Name)
		}
	}
}

func TestAnalyzer_ProviderErrorUsesFallback(t *testing.T) {
	analyzer := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "overloaded"}}`, http.StatusServiceUnavailable)
	})

	analysis := analyzer.Analyze(context.Background(), longDocument)

	if analysis.SelectionCriteria[0].Name != "Certification MASE" {
		t.Errorf("first fallback criterion = %q, want Certification MASE", analysis.SelectionCriteria[0].Name)
	}
	// The document names a specialty, so the competence criterion appears.
	found := false
	for _, c := range analysis.SelectionCriteria {
		if strings.HasPrefix(c.Name, "Compétence") {
			found = true
		}
	}
	if !found {
		t.Error("fallback missed the domain competence criterion")
	}
	if len(analysis.AttributionCriteria) != 3 {
		t.Fatalf("got %d attribution criteria, want 3", len(analysis.AttributionCriteria))
	}
	if analysis.AttributionCriteria[0].Weight != 40 {
		t.Errorf("Prix weight = %d, want 40", analysis.AttributionCriteria[0].Weight)
	}
}

func TestAnalyzer_GarbageAnswerUsesFallback(t *testing.T) {
	analyzer := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse("Je ne peux pas analyser ce document, désolé."))
	})

	analysis := analyzer.Analyze(context.Background(), longDocument)

	if len(analysis.SelectionCriteria) < 4 {
		t.Errorf("fallback produced %d criteria, want the default set", len(analysis.SelectionCriteria))
	}
}

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		wantErr bool
	}{
		{
			"fenced json",
			"```json\n{\"keywords\": [\"a\"], \"selectionCriteria\": [], \"attributionCriteria\": []}\n```",
			false,
		},
		{
			"bare json with prose",
			"Bien sûr ! {\"keywords\": [\"a\"], \"selectionCriteria\": [], \"attributionCriteria\": []} Voilà.",
			false,
		},
		{"no json at all", "Je ne sais pas.", true},
		{"broken json", "```json\n{\"keywords\": [\n```", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnalysis(tt.answer)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseAnalysis_RepairsEmptyFields(t *testing.T) {
	analysis, err := parseAnalysis(`{"selectionCriteria": [{"description": "juste une description"}], "attributionCriteria": []}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.Keywords) == 0 {
		t.Error("keywords should be backfilled")
	}
	c := analysis.SelectionCriteria[0]
	if c.ID != 1 {
		t.Errorf("id = %d, want 1", c.ID)
	}
	if c.Name != "Critère 1" {
		t.Errorf("name = %q, want 'Critère 1'", c.Name)
	}
	if !c.Selected {
		t.Error("selected should default to true")
	}
}

func TestNormalizeWeights_ZeroTotal(t *testing.T) {
	criteria := []AttributionCriterion{
		{ID: 1, Name: "Prix", Weight: 0},
		{ID: 2, Name: "Délai", Weight: 0},
	}
	normalizeWeights(criteria)

	if criteria[0].Weight+criteria[1].Weight != 100 {
		t.Errorf("weights = [%d %d], want total 100", criteria[0].Weight, criteria[1].Weight)
	}
}

func TestFallbackKeywords(t *testing.T) {
	keywords := fallbackKeywords("nettoyage et décontamination des circuits d'eau à Chooz")

	want := map[string]bool{"Hydraulique": false, "Nettoyage": false, "Chooz": false}
	for _, kw := range keywords {
		if _, ok := want[kw]; ok {
			want[kw] = true
		}
	}
	for kw, found := range want {
		if !found {
			t.Errorf("keywords %v missing %q", keywords, kw)
		}
	}
}
