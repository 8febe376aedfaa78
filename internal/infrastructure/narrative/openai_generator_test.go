package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"granite_estimator/internal/config"
	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/domain/estimator"
)

func sampleEstimate() entities.Estimate {
	return entities.Estimate{
		ID: "est-1",
		Request: estimator.ProjectRequest{
			TotalAreaSqFt: 100,
			MaterialKey:   "granite",
			SinkCount:     1,
			SinkTier:      estimator.TierStandard,
			CooktopTier:   estimator.TierStandard,
			EdgeDetail:    estimator.EdgeStandard,
			JobType:       estimator.JobFabricateAndInstall,
			CustomerName:  "Dana",
		},
		Breakdown: estimator.Breakdown{
			MaterialCost:     4500,
			SinkCost:         100,
			PreliminaryTotal: 4600,
			LaborCost:        5850,
			TotalProjectCost: 10450,
			SlabCount:        2,
			FinalCostPerSqFt: 104.5,
		},
		PriceEntry:  estimator.PriceEntry{UnitCostPerSqFt: 45, SlabCoverageSqFt: 100},
		MaterialKey: "granite",
	}
}

func fakeOpenAI(t *testing.T, status int, content string, seen *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		*seen = append(*seen, string(body))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		resp := map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestOpenAIGenerator_GenerateNarrative(t *testing.T) {
	var seen []string
	srv := fakeOpenAI(t, http.StatusOK, "  Dear Dana, here is your estimate.  ", &seen)
	defer srv.Close()

	g := NewOpenAIGenerator(config.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1", NarrativeModel: "gpt-4", ChatModel: "gpt-3.5-turbo"})
	text, err := g.GenerateNarrative(context.Background(), sampleEstimate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Dear Dana, here is your estimate." {
		t.Fatalf("unexpected text %q", text)
	}
	if len(seen) != 1 || !strings.Contains(seen[0], "Total Project Cost: $10450.00") {
		t.Fatalf("prompt missing totals: %v", seen)
	}
	if !strings.Contains(seen[0], `"model":"gpt-4"`) {
		t.Fatalf("expected narrative model in request: %s", seen[0])
	}
}

func TestOpenAIGenerator_Reply(t *testing.T) {
	var seen []string
	srv := fakeOpenAI(t, http.StatusOK, "We are open 9-5.", &seen)
	defer srv.Close()

	g := NewOpenAIGenerator(config.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1", NarrativeModel: "gpt-4", ChatModel: "gpt-3.5-turbo"})
	text, err := g.Reply(context.Background(), "You are CARI.", "When are you open?")
	if err != nil || text != "We are open 9-5." {
		t.Fatalf("unexpected reply %q err=%v", text, err)
	}
	if !strings.Contains(seen[0], `"model":"gpt-3.5-turbo"`) || !strings.Contains(seen[0], `"max_tokens":250`) {
		t.Fatalf("unexpected chat request: %s", seen[0])
	}
}

func TestOpenAIGenerator_ProviderError(t *testing.T) {
	var seen []string
	srv := fakeOpenAI(t, http.StatusInternalServerError, "", &seen)
	defer srv.Close()

	g := NewOpenAIGenerator(config.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1", NarrativeModel: "gpt-4"})
	if _, err := g.GenerateNarrative(context.Background(), sampleEstimate()); err == nil {
		t.Fatalf("expected provider error")
	}
}

func TestOpenAIGenerator_NotConfigured(t *testing.T) {
	g := NewOpenAIGenerator(config.OpenAIConfig{})
	if _, err := g.GenerateNarrative(context.Background(), sampleEstimate()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := g.Reply(context.Background(), "sys", "hi"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestOpenAIGenerator_MockMode(t *testing.T) {
	g := NewOpenAIGenerator(config.OpenAIConfig{Mock: true})
	text, err := g.GenerateNarrative(context.Background(), sampleEstimate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "$10450.00") || !strings.Contains(text, "Dana") {
		t.Fatalf("unexpected mock narrative %q", text)
	}
}

func TestBuildPrompt_FlagsDefaultedMaterial(t *testing.T) {
	e := sampleEstimate()
	e.MaterialDefaulted = true
	e.MaterialKey = "unobtainium"

	p := BuildPrompt(e)
	if !strings.Contains(p, "not found in the current price list") {
		t.Fatalf("expected defaulted note in prompt:\n%s", p)
	}
	if !strings.Contains(p, "Slab Count: 2") || !strings.Contains(p, "Customer: Dana") {
		t.Fatalf("unexpected prompt:\n%s", p)
	}
}
