package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantModel string
		wantErr   error
	}{
		{
			name:      "vendor-prefixed model passes through",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.5-flash"},
			wantModel: "google/gemini-2.5-flash",
		},
		{
			name:      "friendly names are not mapped",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "gemini-flash"},
			wantModel: "gemini-flash",
		},
		{
			name:    "missing key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.5-flash"},
			wantErr: ErrMissingCredential,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tt.wantModel {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.wantModel)
			}
		})
	}
}

func TestOpenRouterProvider_UsesBaseURL(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "gen-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "google/gemini-2.5-flash",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": "Equity adjusts for need."},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.5-flash",
		BaseURL: server.URL + "/api/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.Generate(context.Background(), Request{
		System:   "You are EDGE-AI.",
		Messages: []Message{{Role: RoleUser, Content: "Equality vs equity?"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Equity adjusts for need." {
		t.Errorf("text = %q", resp.Text)
	}
	if gotPath != "/api/v1/chat/completions" {
		t.Errorf("path = %q, want /api/v1/chat/completions", gotPath)
	}
	if gotAuth != "Bearer sk-or-test" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotBody["model"] != "google/gemini-2.5-flash" {
		t.Errorf("model sent = %v", gotBody["model"])
	}
}
