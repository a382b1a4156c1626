package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindguard/internal/scoring"
)

func TestAnalysisWithoutEntriesIsEmpty(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "empty@example.com")

	status, raw := doJSON(t, app, http.MethodGet, "/api/analysis", token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, string(raw))
	}
	analysis := scoring.Analysis{}
	decodeJSON(t, raw, &analysis)
	if analysis.EntriesAnalyzed != 0 || analysis.OverallScore != 0 {
		t.Fatalf("expected empty analysis, got %#v", analysis)
	}
	if analysis.CrisisRisk || analysis.NeedsProfessionalHelp {
		t.Fatal("empty analysis must not raise flags")
	}
}

func TestAnalysisFlagsCrisisFromSuicidalThoughts(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "crisis@example.com")

	payload := moodPayload(3, 2)
	payload["depressiveSymptoms"] = fiber.Map{"sadness": 2, scoring.SuicidalThoughtsIndicator: 2}
	if status, raw := doJSON(t, app, http.MethodPut, "/api/entries/"+testDay(-1), token, payload); status != fiber.StatusCreated {
		t.Fatalf("seed entry: %d %s", status, string(raw))
	}
	doJSON(t, app, http.MethodPut, "/api/entries/"+testDay(0), token, moodPayload(5, 1))

	status, raw := doJSON(t, app, http.MethodGet, "/api/analysis", token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, string(raw))
	}
	analysis := scoring.Analysis{}
	decodeJSON(t, raw, &analysis)
	if analysis.EntriesAnalyzed != 2 {
		t.Fatalf("expected 2 entries analyzed, got %d", analysis.EntriesAnalyzed)
	}
	if !analysis.CrisisRisk || !analysis.NeedsProfessionalHelp {
		t.Fatalf("expected crisis and professional help flags, got %#v", analysis)
	}
}
