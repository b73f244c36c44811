package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-planner/pkg/gemini"
)

func TestNew_Validate(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing api key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("expected default model %s, got %s", gemini.DefaultModel, client.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.Contains(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := body["contents"].([]interface{})
		first := contents[0].(map[string]interface{})
		text := first["parts"].([]interface{})[0].(map[string]interface{})["text"].(string)

		switch text {
		case "cause_503":
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":{"message":"The model is overloaded"}}`))
			return
		case "no_candidates":
			w.Write([]byte(`{"candidates": []}`))
			return
		}

		if _, ok := body["generationConfig"]; !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "Day 1\n" },
							{ "text": "Visit the fort" }
						],
						"role": "model"
					}
				}
			],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 8, "totalTokenCount": 20}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{
		APIKey: "test-api-key",
		Model:  "gemini-test",
		APIURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "be brief"}}},
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "plan a trip"}}},
			},
			Temperature: 0.7,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 2 {
			t.Fatalf("expected 2 parts, got %d", len(resp.Content.Parts))
		}
		if resp.Content.Parts[1].Text != "Visit the fort" {
			t.Errorf("unexpected text: %q", resp.Content.Parts[1].Text)
		}
		if resp.Usage.TotalTokens != 20 {
			t.Errorf("expected 20 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("Overloaded Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "cause_503"}}}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", apiErr.StatusCode)
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "no_candidates"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 0 || resp.Usage == nil {
			t.Errorf("expected empty content with usage, got %+v", resp)
		}
	})
}
