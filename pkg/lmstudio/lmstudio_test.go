package lmstudio_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"search-agent-system/pkg/lmstudio"
)

func TestChatCompletion(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var req lmstudio.Request
		json.NewDecoder(r.Body).Decode(&req)

		if len(req.Messages) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "messages required", "type": "invalid_request"},
			})
			return
		}

		if strings.Contains(req.Messages[len(req.Messages)-1].Content, "boom") {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream exploded"))
			return
		}

		json.NewEncoder(w).Encode(lmstudio.Response{
			Model: req.Model,
			Choices: []lmstudio.Choice{
				{Message: lmstudio.Message{Role: "assistant", Content: "[crypto_asset] bitcoin"}},
			},
		})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client, err := lmstudio.New(lmstudio.Config{BaseURL: ts.URL, Model: "local-model"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	t.Run("returns first choice content", func(t *testing.T) {
		content, err := client.ChatCompletion(ctx, &lmstudio.Request{
			Messages: []lmstudio.Message{
				{Role: lmstudio.RoleSystem, Content: "route"},
				{Role: lmstudio.RoleUser, Content: "price of bitcoin"},
			},
			Temperature: 0.1,
			MaxTokens:   100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if content != "[crypto_asset] bitcoin" {
			t.Errorf("expected routed content, got %q", content)
		}
	})

	t.Run("structured API error", func(t *testing.T) {
		_, err := client.ChatCompletion(ctx, &lmstudio.Request{})
		if err == nil {
			t.Fatal("expected error for empty messages")
		}
		if !strings.Contains(err.Error(), "messages required") {
			t.Errorf("expected server message in error, got %v", err)
		}
	})

	t.Run("non-JSON error body", func(t *testing.T) {
		_, err := client.ChatCompletion(ctx, &lmstudio.Request{
			Messages: []lmstudio.Message{{Role: lmstudio.RoleUser, Content: "boom"}},
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "API error 500") {
			t.Errorf("expected status in error, got %v", err)
		}
	})
}

func TestChatCompletionNoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(lmstudio.Response{})
	}))
	defer ts.Close()

	client, _ := lmstudio.New(lmstudio.Config{BaseURL: ts.URL})
	_, err := client.ChatCompletion(context.Background(), &lmstudio.Request{
		Messages: []lmstudio.Message{{Role: lmstudio.RoleUser, Content: "hi"}},
	})
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Errorf("expected no choices error, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		cfg := lmstudio.Config{}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BaseURL != lmstudio.DefaultBaseURL {
			t.Errorf("expected default base URL, got %q", cfg.BaseURL)
		}
		if cfg.Timeout != lmstudio.DefaultTimeout {
			t.Errorf("expected default timeout, got %s", cfg.Timeout)
		}
	})

	t.Run("timeout above ceiling rejected", func(t *testing.T) {
		cfg := lmstudio.Config{Timeout: 30 * time.Second}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for 30s timeout")
		}
	})
}

func TestChatCompletionTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	client, err := lmstudio.New(lmstudio.Config{BaseURL: ts.URL, Timeout: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.ChatCompletion(context.Background(), &lmstudio.Request{
		Messages: []lmstudio.Message{{Role: lmstudio.RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected timeout error")
	}
}
